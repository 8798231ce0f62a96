package seeders

import (
	"fmt"

	"github.com/JadeHarbert/CourseProject/app/models"
	"github.com/JadeHarbert/CourseProject/app/models/migrations"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBSeed inserts the fixed menu into an empty schema.
func DBSeed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]*models.Category, len(categorySeeds))
		for _, c := range categorySeeds {
			category := &models.Category{ID: c.ID, Name: c.Name}
			if err := tx.Create(category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
			}
			categories[c.Name] = category
		}

		toppings := make(map[string]models.Topping, len(toppingSeeds))
		for _, name := range toppingSeeds {
			topping := models.Topping{Name: name}
			if err := tx.Create(&topping).Error; err != nil {
				return fmt.Errorf("failed to seed topping %s: %w", name, err)
			}
			toppings[name] = topping
		}

		for _, s := range itemSeeds {
			category, ok := categories[s.Category]
			if !ok {
				return fmt.Errorf("item %s references unknown category %s", s.Name, s.Category)
			}
			price, err := decimal.NewFromString(s.Price)
			if err != nil {
				return fmt.Errorf("item %s has invalid price %q: %w", s.Name, s.Price, err)
			}

			item := models.Item{
				Name:       s.Name,
				Price:      price,
				CategoryID: category.ID,
			}
			for _, name := range s.Toppings {
				topping, ok := toppings[name]
				if !ok {
					return fmt.Errorf("item %s references unknown topping %s", s.Name, name)
				}
				item.Toppings = append(item.Toppings, topping)
			}

			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to seed item %s: %w", s.Name, err)
			}
		}

		return nil
	})
}

// ResetAndSeed drops all rows and recreates them from the fixed seed list.
func ResetAndSeed(db *gorm.DB) error {
	if err := migrations.Reset(db); err != nil {
		return err
	}
	if err := DBSeed(db); err != nil {
		return err
	}
	zap.L().Info("Database reset and seeded",
		zap.Int("categories", len(categorySeeds)),
		zap.Int("toppings", len(toppingSeeds)),
		zap.Int("items", len(itemSeeds)),
	)
	return nil
}
