package models

type Topping struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;uniqueIndex"`
}

func (Topping) TableName() string {
	return "toppings"
}
