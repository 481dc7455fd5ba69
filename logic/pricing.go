package logic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"menucart/catalog"
)

// DisplayPrefix introduces a non-empty customization summary.
const DisplayPrefix = "— "

// UnitPrice returns base plus every applicable customization delta.
func UnitPrice(base decimal.Decimal, sel Selections, item catalog.MenuItem) decimal.Decimal {
	return base.Add(CustomizationSurcharge(sel, item))
}

// CustomizationSurcharge sums the deltas of chosen addons and of select
// options whose label matches. Unknown keys and labels contribute zero.
func CustomizationSurcharge(sel Selections, item catalog.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, c := range item.Customizations {
		if delta, ok := selectedDelta(c, sel.Get(c.ID)); ok {
			total = total.Add(delta)
		}
	}
	return total
}

// CustomizationDisplay renders the chosen customizations in the item's
// order, e.g. "— Hot, Extra Cheese (+₹50)".
func CustomizationDisplay(sel Selections, item catalog.MenuItem) string {
	if !item.HasCustomizations() || len(sel) == 0 {
		return ""
	}

	var parts []string
	for _, c := range item.Customizations {
		s := sel.Get(c.ID)
		if _, ok := selectedDelta(c, s); !ok {
			continue
		}
		switch c.Kind {
		case catalog.KindSelect:
			parts = append(parts, s.Label())
		case catalog.KindAddon:
			parts = append(parts, fmt.Sprintf("%s (+₹%s)", c.Name, c.Price.String()))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return DisplayPrefix + strings.Join(parts, ", ")
}

// selectedDelta reports the price delta a selection adds to the given spec,
// and whether the selection applies at all.
func selectedDelta(c catalog.CustomizationSpec, s Selection) (decimal.Decimal, bool) {
	if !s.IsChosen() {
		return decimal.Zero, false
	}
	switch c.Kind {
	case catalog.KindAddon:
		return c.Price, true
	case catalog.KindSelect:
		opt, ok := c.FindOption(s.Label())
		if !ok {
			return decimal.Zero, false
		}
		return opt.Price, true
	default:
		return decimal.Zero, false
	}
}
