package logic

import (
	"github.com/shopspring/decimal"

	"menucart/catalog"
)

// CartLogic is the set of pure cart transitions the Store drives.
type CartLogic interface {
	Add(cart Cart, item catalog.MenuItem, sel Selections, quantity int) (Cart, error)
	Remove(cart Cart, id string) Cart
	SetQuantity(cart Cart, id string, quantity int) (Cart, error)
	Totals(cart Cart, taxRate decimal.Decimal) Totals
}

type DefaultCartLogic struct{}

func NewCartLogic() CartLogic {
	return &DefaultCartLogic{}
}

func (l *DefaultCartLogic) Add(cart Cart, item catalog.MenuItem, sel Selections, quantity int) (Cart, error) {
	return Add(cart, item, sel, quantity)
}

func (l *DefaultCartLogic) Remove(cart Cart, id string) Cart {
	return Remove(cart, id)
}

func (l *DefaultCartLogic) SetQuantity(cart Cart, id string, quantity int) (Cart, error) {
	return SetQuantity(cart, id, quantity)
}

func (l *DefaultCartLogic) Totals(cart Cart, taxRate decimal.Decimal) Totals {
	return ComputeTotals(cart, taxRate)
}
