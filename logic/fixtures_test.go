package logic

import (
	"github.com/shopspring/decimal"

	"menucart/catalog"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// pizza is the reference item: base 200, Extra Cheese addon +50,
// Spice Level select Mild/Hot (+0/+20).
func pizza() catalog.MenuItem {
	return catalog.MenuItem{
		ID:          "pizza",
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, basil",
		Price:       dec("200"),
		Category:    "Pizza",
		Image:       "/images/margherita.jpg",
		Customizations: []catalog.CustomizationSpec{
			{ID: "cheese", Name: "Extra Cheese", Kind: catalog.KindAddon, Price: dec("50")},
			{ID: "spice", Name: "Spice Level", Kind: catalog.KindSelect, Options: []catalog.Option{
				{Label: "Mild", Price: dec("0")},
				{Label: "Hot", Price: dec("20")},
			}},
		},
	}
}

func lassi() catalog.MenuItem {
	return catalog.MenuItem{
		ID:       "lassi",
		Name:     "Mango Lassi",
		Price:    dec("110"),
		Category: "Beverages",
	}
}
