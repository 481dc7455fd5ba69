// Package catalog holds the static menu the cart prices against.
package catalog

import "github.com/shopspring/decimal"

// Kind distinguishes single-choice option groups from boolean toggles.
type Kind string

const (
	KindSelect Kind = "select"
	KindAddon  Kind = "addon"
)

// Option is one choice inside a select customization.
type Option struct {
	Label string          `json:"label" yaml:"label"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// CustomizationSpec is an option group or toggle attached to a MenuItem.
// Options is only meaningful for KindSelect, Price only for KindAddon.
type CustomizationSpec struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Kind    Kind            `json:"type" yaml:"type"`
	Options []Option        `json:"options,omitempty" yaml:"options,omitempty"`
	Price   decimal.Decimal `json:"price" yaml:"price"`
}

// FindOption returns the option with the given label.
func (c CustomizationSpec) FindOption(label string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.Label == label {
			return opt, true
		}
	}
	return Option{}, false
}

// MenuItem is a purchasable dish.
type MenuItem struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	Description    string              `json:"description" yaml:"description"`
	Price          decimal.Decimal     `json:"price" yaml:"price"`
	Category       string              `json:"category" yaml:"category"`
	Image          string              `json:"image" yaml:"image"`
	Customizations []CustomizationSpec `json:"customizations,omitempty" yaml:"customizations,omitempty"`
}

// HasCustomizations reports whether the item offers any customization.
func (m MenuItem) HasCustomizations() bool {
	return len(m.Customizations) > 0
}

// CategoryOrOther returns the item's category, falling back to OtherCategory.
func (m MenuItem) CategoryOrOther() string {
	if m.Category == "" {
		return OtherCategory
	}
	return m.Category
}
