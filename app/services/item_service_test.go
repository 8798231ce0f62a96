package services_test

import (
	"context"
	"testing"

	"github.com/JadeHarbert/CourseProject/app/repositories"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemService(db *gorm.DB) *services.ItemService {
	return services.NewItemService(
		repositories.NewCategoryRepository(db),
		repositories.NewToppingRepository(db),
		repositories.NewItemRepository(db),
	)
}

func TestItemServiceFormChoices(t *testing.T) {
	svc := newItemService(seededDB(t))

	choices, err := svc.FormChoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Burger", "Sandwich", "Salad", "Appetizer", "Sub", "Fried Chicken"}, choices.Categories)
	assert.Len(t, choices.Toppings, 17)
	assert.Len(t, choices.Items, 16)
	assert.Contains(t, choices.Items, "Yacht Club")
}

func TestItemServiceAddItem(t *testing.T) {
	db := seededDB(t)
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, services.AddItemInput{
		Name:     "Mushroom Swiss",
		Price:    decimal.RequireFromString("10.25"),
		Category: "Burger",
		Toppings: []string{"Mushroom", "Cheese", "Mushroom"},
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.EqualValues(t, 1, item.CategoryID)

	menu, err := newMenuService(db).BuildMenu(ctx, "Burgers")
	require.NoError(t, err)
	require.Len(t, menu.Sections, 1)
	require.Len(t, menu.Sections[0].Items, 3)
	added := menu.Sections[0].Items[2]
	assert.Equal(t, "Mushroom Swiss", added.Name)
	assert.ElementsMatch(t, []string{"Cheese", "Mushroom"}, added.ToppingNames())
	assert.Equal(t, "10.25", added.Price.StringFixed(2))
}

func TestItemServiceAddItemWithoutToppings(t *testing.T) {
	svc := newItemService(seededDB(t))

	item, err := svc.AddItem(context.Background(), services.AddItemInput{
		Name:     "Hush Puppies",
		Price:    decimal.RequireFromString("4.50"),
		Category: "Appetizer",
	})
	require.NoError(t, err)
	assert.Empty(t, item.Toppings)
}

func TestItemServiceAddItemErrors(t *testing.T) {
	svc := newItemService(seededDB(t))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, services.AddItemInput{
		Name:     "Cheeseburger",
		Price:    decimal.RequireFromString("8.99"),
		Category: "Burger",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateName)

	_, err = svc.AddItem(ctx, services.AddItemInput{
		Name:     "Brownie",
		Price:    decimal.RequireFromString("3.00"),
		Category: "Dessert",
	})
	assert.ErrorIs(t, err, services.ErrUnknownCategory)
	assert.NotErrorIs(t, err, repositories.ErrDuplicateName)

	_, err = svc.AddItem(ctx, services.AddItemInput{
		Name:     "Hawaiian Burger",
		Price:    decimal.RequireFromString("9.00"),
		Category: "Burger",
		Toppings: []string{"Pineapple"},
	})
	assert.ErrorIs(t, err, services.ErrUnknownTopping)
}

func TestItemServiceDeleteItem(t *testing.T) {
	db := seededDB(t)
	svc := newItemService(db)
	ctx := context.Background()

	require.NoError(t, svc.DeleteItem(ctx, "Curly Fries"))

	choices, err := svc.FormChoices(ctx)
	require.NoError(t, err)
	assert.NotContains(t, choices.Items, "Curly Fries")
	assert.Len(t, choices.Items, 15)

	err = svc.DeleteItem(ctx, "Curly Fries")
	assert.ErrorIs(t, err, repositories.ErrItemNotFound)
}
