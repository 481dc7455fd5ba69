package logic

import (
	"github.com/shopspring/decimal"

	"menucart/catalog"
)

// LineItem is one priced, quantified cart entry. UnitPrice and
// CustomizationDisplay are frozen from the MenuItem at creation time.
type LineItem struct {
	ID                   string          `json:"cartItemId"`
	MenuItemID           string          `json:"menuItemId"`
	Name                 string          `json:"name"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	Quantity             int             `json:"quantity"`
	LineTotal            decimal.Decimal `json:"lineItemPrice"`
	Selections           Selections      `json:"customizationSelections"`
	CustomizationDisplay string          `json:"customizationDisplay"`
	Image                string          `json:"image"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
}

// NewLineItem prices item with sel and snapshots its display fields.
func NewLineItem(item catalog.MenuItem, sel Selections, quantity int) LineItem {
	unit := UnitPrice(item.Price, sel, item)
	return LineItem{
		ID:                   LineItemID(item.ID, sel),
		MenuItemID:           item.ID,
		Name:                 item.Name,
		BasePrice:            item.Price,
		UnitPrice:            unit,
		Quantity:             quantity,
		LineTotal:            lineTotal(unit, quantity),
		Selections:           sel.Canonical(),
		CustomizationDisplay: CustomizationDisplay(sel, item),
		Image:                item.Image,
		Description:          item.Description,
		Category:             item.Category,
	}
}

// WithQuantity returns li with quantity set and LineTotal recomputed from
// UnitPrice.
func (li LineItem) WithQuantity(quantity int) LineItem {
	li.Quantity = quantity
	li.LineTotal = lineTotal(li.UnitPrice, quantity)
	return li
}

func lineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// Cart is the ordered set of line items; order is first-add order.
type Cart []LineItem

// EmptyCart returns a cart with no entries.
func EmptyCart() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Copy returns a cart that shares no mutable state with c.
func (c Cart) Copy() Cart {
	out := make(Cart, len(c))
	for i, li := range c {
		li.Selections = li.Selections.Clone()
		out[i] = li
	}
	return out
}

func (c Cart) indexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the line item with the given id.
func (c Cart) Find(id string) (LineItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c[i], true
	}
	return LineItem{}, false
}

// ItemCount sums quantities across every line item.
func (c Cart) ItemCount() int {
	n := 0
	for _, li := range c {
		n += li.Quantity
	}
	return n
}

// Categories lists the line items' categories in first-seen order.
func (c Cart) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, li := range c {
		cat := categoryOf(li)
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// GroupByCategory buckets line items by category, keeping cart order
// within each bucket. Items without a category land in "Other".
func (c Cart) GroupByCategory() map[string]Cart {
	out := make(map[string]Cart)
	for _, li := range c {
		cat := categoryOf(li)
		out[cat] = append(out[cat], li)
	}
	return out
}

func categoryOf(li LineItem) string {
	if li.Category == "" {
		return catalog.OtherCategory
	}
	return li.Category
}
