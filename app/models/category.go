package models

type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:64"`
	Items []Item `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}

var pluralNames = map[string]string{
	"Sandwich":      "Sandwiches",
	"Fried Chicken": "Fried Chicken",
}

// PluralName is the label the menu filter shows for this category.
func (c Category) PluralName() string {
	if plural, ok := pluralNames[c.Name]; ok {
		return plural
	}
	return c.Name + "s"
}
