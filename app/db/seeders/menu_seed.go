package seeders

type itemSeed struct {
	Name     string
	Price    string
	Category string
	Toppings []string
}

var categorySeeds = []struct {
	ID   uint
	Name string
}{
	{1, "Burger"},
	{2, "Sandwich"},
	{3, "Salad"},
	{4, "Appetizer"},
	{5, "Sub"},
	{6, "Fried Chicken"},
}

var toppingSeeds = []string{
	"Lettuce",
	"Tomato",
	"Ketchup",
	"Mustard",
	"Onion",
	"Pickle",
	"Cheese",
	"Mayonnaise",
	"Bacon",
	"Cherry",
	"Crispy Chicken",
	"Turkey",
	"Ham",
	"Mushroom",
	"Green Peppers",
	"Shaved Steak",
	"Banana Peppers",
}

var itemSeeds = []itemSeed{
	{"Cheeseburger", "8.99", "Burger", []string{"Cheese", "Mustard", "Ketchup", "Pickle", "Onion"}},
	{"Dexter Deluxe", "9.99", "Burger", []string{"Cheese", "Mustard", "Ketchup", "Pickle", "Onion", "Mayonnaise"}},
	{"Bruin Lake BLT", "12.99", "Sandwich", []string{"Cheese", "Bacon", "Mayonnaise", "Lettuce", "Tomato"}},
	{"Yacht Club", "13.99", "Sandwich", []string{"Bacon", "Cheese", "Lettuce", "Tomato", "Mayonnaise", "Turkey", "Ham"}},
	{"Pure Michigan Chicken Salad", "10.99", "Salad", []string{"Lettuce", "Bacon", "Tomato", "Cheese", "Cherry", "Crispy Chicken"}},
	{"Garden Salad", "6.99", "Salad", []string{"Lettuce", "Cheese", "Tomato", "Onion"}},
	{"Philly Cheese Steak", "13.99", "Sub", []string{"Cheese", "Onion", "Shaved Steak", "Mushroom", "Green Peppers"}},
	{"Straight and Arrow Veggie", "9.99", "Sub", []string{"Onion", "Green Peppers", "Lettuce", "Tomato", "Cheese", "Banana Peppers"}},
	{"Mozzarella Sticks", "6.99", "Appetizer", nil},
	{"Onion Rings", "6.99", "Appetizer", nil},
	{"French Fries", "3.99", "Appetizer", nil},
	{"Curly Fries", "3.99", "Appetizer", nil},
	{"Chicken Breast", "3.69", "Fried Chicken", nil},
	{"Chicken Thigh", "2.99", "Fried Chicken", nil},
	{"Chicken Leg", "2.99", "Fried Chicken", nil},
	{"Chicken Wing", "2.79", "Fried Chicken", nil},
}
