package seeders_test

import (
	"testing"

	"github.com/JadeHarbert/CourseProject/app/db/seeders"
	"github.com/JadeHarbert/CourseProject/app/db/testdb"
	"github.com/JadeHarbert/CourseProject/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetAndSeed(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, seeders.ResetAndSeed(db))

	var categories, toppings, items, links int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Topping{}).Count(&toppings).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&items).Error)
	require.NoError(t, db.Table(models.MenuTable).Count(&links).Error)

	assert.EqualValues(t, 6, categories)
	assert.EqualValues(t, 17, toppings)
	assert.EqualValues(t, 16, items)
	assert.EqualValues(t, 5+6+5+7+6+4+5+6, links)

	var cheeseburger models.Item
	require.NoError(t, db.Preload("Toppings").Where("name = ?", "Cheeseburger").First(&cheeseburger).Error)
	assert.Equal(t, "8.99", cheeseburger.Price.StringFixed(2))
	assert.EqualValues(t, 1, cheeseburger.CategoryID)
	assert.ElementsMatch(t, []string{"Cheese", "Mustard", "Ketchup", "Pickle", "Onion"}, cheeseburger.ToppingNames())
}

func TestResetAndSeedTwice(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, seeders.ResetAndSeed(db))

	require.NoError(t, db.Create(&models.Item{Name: "Leftover", CategoryID: 1}).Error)

	require.NoError(t, seeders.ResetAndSeed(db))

	var items int64
	require.NoError(t, db.Model(&models.Item{}).Count(&items).Error)
	assert.EqualValues(t, 16, items)

	var leftover int64
	require.NoError(t, db.Model(&models.Item{}).Where("name = ?", "Leftover").Count(&leftover).Error)
	assert.Zero(t, leftover)
}

func TestCategoryIDsAreFixed(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, seeders.ResetAndSeed(db))

	var categories []models.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)

	names := make(map[uint]string)
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	assert.Equal(t, map[uint]string{
		1: "Burger",
		2: "Sandwich",
		3: "Salad",
		4: "Appetizer",
		5: "Sub",
		6: "Fried Chicken",
	}, names)
}
