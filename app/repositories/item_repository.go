package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/JadeHarbert/CourseProject/app/models"
	"gorm.io/gorm"
)

type ItemRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByName(ctx context.Context, name string) (*models.Item, error)
	GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	DeleteByName(ctx context.Context, name string) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepositoryImpl {
	return &itemRepository{db}
}

func orderedToppings(db *gorm.DB) *gorm.DB {
	return db.Order("toppings.id")
}

func (r *itemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByName returns nil, nil when no item has that name.
func (r *itemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Toppings", orderedToppings).
		Where("name = ?", name).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Preload("Toppings", orderedToppings).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&items).Error
	return items, err
}

// Create inserts the item and its menu rows in one transaction. A name that
// is already taken yields an error wrapping ErrDuplicateName.
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Category", "Toppings.*").Create(item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create item %q: %w", item.Name, classifyWriteError(err))
	}
	return nil
}

func (r *itemRepository) DeleteByName(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Where("name = ?", name).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrItemNotFound, name)
			}
			return fmt.Errorf("failed to find item %q: %w", name, err)
		}

		if err := tx.Model(&item).Association("Toppings").Clear(); err != nil {
			return fmt.Errorf("failed to clear toppings of item %q: %w", name, err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete item %q: %w", name, err)
		}
		return nil
	})
}
