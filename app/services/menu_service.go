package services

import (
	"context"
	"fmt"

	"github.com/JadeHarbert/CourseProject/app/models"
	"github.com/JadeHarbert/CourseProject/app/repositories"
)

// FilterAll shows every category section on the menu page.
const FilterAll = "All"

type MenuSection struct {
	Label    string
	Category models.Category
	Items    []models.Item
}

type MenuView struct {
	Filter   string
	Choices  []string
	Sections []MenuSection
}

type MenuService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	itemRepo     repositories.ItemRepositoryImpl
}

func NewMenuService(categoryRepo repositories.CategoryRepositoryImpl, itemRepo repositories.ItemRepositoryImpl) *MenuService {
	return &MenuService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// FilterChoices lists "All" followed by the plural label of every category.
func (s *MenuService) FilterChoices(ctx context.Context) ([]string, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return filterChoices(categories), nil
}

func filterChoices(categories []models.Category) []string {
	choices := make([]string, 0, len(categories)+1)
	choices = append(choices, FilterAll)
	for _, c := range categories {
		choices = append(choices, c.PluralName())
	}
	return choices
}

// BuildMenu loads the items of every category selected by filter. An empty
// or unknown filter falls back to FilterAll.
func (s *MenuService) BuildMenu(ctx context.Context, filter string) (*MenuView, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	view := &MenuView{
		Filter:  FilterAll,
		Choices: filterChoices(categories),
	}
	for _, c := range categories {
		if c.PluralName() == filter {
			view.Filter = filter
			break
		}
	}

	for _, c := range categories {
		if view.Filter != FilterAll && c.PluralName() != view.Filter {
			continue
		}
		items, err := s.itemRepo.GetByCategoryID(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get items for category %s: %w", c.Name, err)
		}
		view.Sections = append(view.Sections, MenuSection{
			Label:    c.PluralName(),
			Category: c,
			Items:    items,
		})
	}

	return view, nil
}
