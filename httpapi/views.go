package httpapi

import (
	"github.com/shopspring/decimal"

	"menucart/logic"
	"menucart/store"
)

// Money is rendered as a fixed two-place string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type lineItemView struct {
	CartItemID           string           `json:"cartItemId"`
	MenuItemID           string           `json:"menuItemId"`
	Name                 string           `json:"name"`
	BasePrice            string           `json:"basePrice"`
	UnitPrice            string           `json:"unitPrice"`
	Quantity             int              `json:"quantity"`
	LineItemPrice        string           `json:"lineItemPrice"`
	Selections           logic.Selections `json:"customizationSelections"`
	CustomizationDisplay string           `json:"customizationDisplay"`
	Image                string           `json:"image,omitempty"`
	Description          string           `json:"description,omitempty"`
	Category             string           `json:"category,omitempty"`
}

type totalsView struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// cartGroupView is one category section of the cart.
type cartGroupView struct {
	Category string         `json:"category"`
	Items    []lineItemView `json:"items"`
}

type cartView struct {
	Items     []lineItemView  `json:"items"`
	Groups    []cartGroupView `json:"groups"`
	Totals    totalsView      `json:"totals"`
	ItemCount int             `json:"itemCount"`
	TaxRate   string          `json:"taxRate"`
}

type quoteView struct {
	MenuItemID           string           `json:"menuItemId"`
	BasePrice            string           `json:"basePrice"`
	Surcharge            string           `json:"surcharge"`
	UnitPrice            string           `json:"unitPrice"`
	Quantity             int              `json:"quantity"`
	LineItemPrice        string           `json:"lineItemPrice"`
	Selections           logic.Selections `json:"customizationSelections"`
	CustomizationDisplay string           `json:"customizationDisplay"`
	CartItemID           string           `json:"cartItemId"`
}

func toLineItemView(li logic.LineItem) lineItemView {
	return lineItemView{
		CartItemID:           li.ID,
		MenuItemID:           li.MenuItemID,
		Name:                 li.Name,
		BasePrice:            money(li.BasePrice),
		UnitPrice:            money(li.UnitPrice),
		Quantity:             li.Quantity,
		LineItemPrice:        money(li.LineTotal),
		Selections:           li.Selections,
		CustomizationDisplay: li.CustomizationDisplay,
		Image:                li.Image,
		Description:          li.Description,
		Category:             li.Category,
	}
}

func toTotalsView(t logic.Totals) totalsView {
	return totalsView{
		Subtotal: money(t.Subtotal),
		Tax:      money(t.Tax),
		Total:    money(t.Total),
	}
}

func toLineItemViews(c logic.Cart) []lineItemView {
	out := make([]lineItemView, 0, len(c))
	for _, li := range c {
		out = append(out, toLineItemView(li))
	}
	return out
}

// toGroupViews sections the cart by category in first-seen order.
func toGroupViews(c logic.Cart) []cartGroupView {
	byCategory := c.GroupByCategory()
	out := make([]cartGroupView, 0, len(byCategory))
	for _, cat := range c.Categories() {
		out = append(out, cartGroupView{Category: cat, Items: toLineItemViews(byCategory[cat])})
	}
	return out
}

func toCartView(snap store.Snapshot) cartView {
	return cartView{
		Items:     toLineItemViews(snap.Items),
		Groups:    toGroupViews(snap.Items),
		Totals:    toTotalsView(snap.Totals),
		ItemCount: snap.ItemCount,
		TaxRate:   snap.TaxRate.String(),
	}
}
