package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JadeHarbert/CourseProject/app/models"
	"github.com/JadeHarbert/CourseProject/app/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownTopping  = errors.New("unknown topping")
)

type AddItemInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
	Toppings []string
}

// FormChoices feeds the select fields of the admin forms.
type FormChoices struct {
	Categories []string
	Toppings   []string
	Items      []string
}

type ItemService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	toppingRepo  repositories.ToppingRepositoryImpl
	itemRepo     repositories.ItemRepositoryImpl
}

func NewItemService(
	categoryRepo repositories.CategoryRepositoryImpl,
	toppingRepo repositories.ToppingRepositoryImpl,
	itemRepo repositories.ItemRepositoryImpl,
) *ItemService {
	return &ItemService{
		categoryRepo: categoryRepo,
		toppingRepo:  toppingRepo,
		itemRepo:     itemRepo,
	}
}

func (s *ItemService) FormChoices(ctx context.Context) (*FormChoices, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	toppings, err := s.toppingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get toppings: %w", err)
	}
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	choices := &FormChoices{
		Categories: make([]string, 0, len(categories)),
		Toppings:   make([]string, 0, len(toppings)),
		Items:      make([]string, 0, len(items)),
	}
	for _, c := range categories {
		choices.Categories = append(choices.Categories, c.Name)
	}
	for _, t := range toppings {
		choices.Toppings = append(choices.Toppings, t.Name)
	}
	for _, i := range items {
		choices.Items = append(choices.Items, i.Name)
	}
	return choices, nil
}

// AddItem creates an item in the named category with the named toppings.
// A taken name surfaces as repositories.ErrDuplicateName.
func (s *ItemService) AddItem(ctx context.Context, in AddItemInput) (*models.Item, error) {
	category, err := s.categoryRepo.GetByName(ctx, in.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %q: %w", in.Category, err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, in.Category)
	}

	names := uniqueNames(in.Toppings)
	toppings, err := s.toppingRepo.GetByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to get toppings: %w", err)
	}
	if len(toppings) != len(names) {
		return nil, fmt.Errorf("%w: one of %v", ErrUnknownTopping, names)
	}

	item := &models.Item{
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: category.ID,
		Toppings:   toppings,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	zap.L().Info("Menu item added",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("category", category.Name),
		zap.Int("toppings", len(toppings)),
	)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, name string) error {
	if err := s.itemRepo.DeleteByName(ctx, name); err != nil {
		return err
	}
	zap.L().Info("Menu item deleted", zap.String("name", name))
	return nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
