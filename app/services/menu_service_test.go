package services_test

import (
	"context"
	"testing"

	"github.com/JadeHarbert/CourseProject/app/db/seeders"
	"github.com/JadeHarbert/CourseProject/app/db/testdb"
	"github.com/JadeHarbert/CourseProject/app/repositories"
	"github.com/JadeHarbert/CourseProject/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testdb.Open(t)
	require.NoError(t, seeders.ResetAndSeed(db))
	return db
}

func newMenuService(db *gorm.DB) *services.MenuService {
	return services.NewMenuService(repositories.NewCategoryRepository(db), repositories.NewItemRepository(db))
}

func sectionLabels(view *services.MenuView) []string {
	labels := make([]string, 0, len(view.Sections))
	for _, s := range view.Sections {
		labels = append(labels, s.Label)
	}
	return labels
}

func TestMenuServiceFilterChoices(t *testing.T) {
	svc := newMenuService(seededDB(t))

	choices, err := svc.FilterChoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Burgers", "Sandwiches", "Salads", "Appetizers", "Subs", "Fried Chicken"}, choices)
}

func TestMenuServiceBuildMenu(t *testing.T) {
	svc := newMenuService(seededDB(t))
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		view, err := svc.BuildMenu(ctx, services.FilterAll)
		require.NoError(t, err)
		assert.Equal(t, services.FilterAll, view.Filter)
		assert.Equal(t, []string{"Burgers", "Sandwiches", "Salads", "Appetizers", "Subs", "Fried Chicken"}, sectionLabels(view))

		total := 0
		for _, s := range view.Sections {
			total += len(s.Items)
		}
		assert.Equal(t, 16, total)
	})

	t.Run("single category", func(t *testing.T) {
		view, err := svc.BuildMenu(ctx, "Salads")
		require.NoError(t, err)
		assert.Equal(t, "Salads", view.Filter)
		require.Len(t, view.Sections, 1)
		assert.Equal(t, "Salad", view.Sections[0].Category.Name)
		require.Len(t, view.Sections[0].Items, 2)
		assert.Equal(t, "Pure Michigan Chicken Salad", view.Sections[0].Items[0].Name)
	})

	t.Run("fried chicken keeps its name", func(t *testing.T) {
		view, err := svc.BuildMenu(ctx, "Fried Chicken")
		require.NoError(t, err)
		require.Len(t, view.Sections, 1)
		assert.Len(t, view.Sections[0].Items, 4)
	})

	t.Run("unknown filter falls back to all", func(t *testing.T) {
		view, err := svc.BuildMenu(ctx, "Desserts")
		require.NoError(t, err)
		assert.Equal(t, services.FilterAll, view.Filter)
		assert.Len(t, view.Sections, 6)
	})

	t.Run("empty filter falls back to all", func(t *testing.T) {
		view, err := svc.BuildMenu(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, services.FilterAll, view.Filter)
		assert.Len(t, view.Sections, 6)
	})
}
