package models

import (
	"github.com/shopspring/decimal"
)

// MenuTable is the association table between items and toppings.
const MenuTable = "menu"

type Item struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:64;uniqueIndex"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)"`
	CategoryID uint            `gorm:"not null;index"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
	Toppings   []Topping       `gorm:"many2many:menu;joinForeignKey:ItemsID;joinReferences:ToppingsID"`
}

func (Item) TableName() string {
	return "items"
}

func (i Item) ToppingNames() []string {
	names := make([]string, 0, len(i.Toppings))
	for _, t := range i.Toppings {
		names = append(names, t.Name)
	}
	return names
}
