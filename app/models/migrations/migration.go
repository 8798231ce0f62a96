package migrations

import (
	"fmt"

	"github.com/JadeHarbert/CourseProject/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Topping{}, &models.Item{})
}

// Reset drops every table, association table first, and recreates the schema.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(models.MenuTable); err != nil {
		return fmt.Errorf("failed to drop %s table: %w", models.MenuTable, err)
	}
	if err := db.Migrator().DropTable(&models.Item{}, &models.Topping{}, &models.Category{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
