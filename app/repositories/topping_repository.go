package repositories

import (
	"context"

	"github.com/JadeHarbert/CourseProject/app/models"
	"gorm.io/gorm"
)

type ToppingRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Topping, error)
	GetByNames(ctx context.Context, names []string) ([]models.Topping, error)
}

type toppingRepository struct {
	db *gorm.DB
}

func NewToppingRepository(db *gorm.DB) ToppingRepositoryImpl {
	return &toppingRepository{db: db}
}

func (r *toppingRepository) GetAll(ctx context.Context) ([]models.Topping, error) {
	var toppings []models.Topping
	if err := r.db.WithContext(ctx).Order("id").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

// GetByNames returns the toppings that exist among names. Callers compare
// lengths to detect unknown names.
func (r *toppingRepository) GetByNames(ctx context.Context, names []string) ([]models.Topping, error) {
	var toppings []models.Topping
	if len(names) == 0 {
		return toppings, nil
	}
	err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Order("id").
		Find(&toppings).Error
	if err != nil {
		return nil, err
	}
	return toppings, nil
}
