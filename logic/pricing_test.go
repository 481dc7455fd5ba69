package logic

import (
	"testing"
)

func TestUnitPrice_NoCustomizations(t *testing.T) {
	item := lassi()
	got := UnitPrice(item.Price, Selections{"anything": Toggle()}, item)

	if !got.Equal(dec("110")) {
		t.Errorf("expected 110, got %s", got)
	}
}

func TestUnitPrice_AddonAndSelect(t *testing.T) {
	item := pizza()
	sel := Selections{"cheese": Toggle(), "spice": Choose("Hot")}

	got := UnitPrice(item.Price, sel, item)

	if !got.Equal(dec("270")) {
		t.Errorf("expected 270, got %s", got)
	}
}

func TestUnitPrice_SelectWithoutDelta(t *testing.T) {
	item := pizza()
	got := UnitPrice(item.Price, Selections{"spice": Choose("Mild")}, item)

	if !got.Equal(dec("200")) {
		t.Errorf("expected 200, got %s", got)
	}
}

func TestUnitPrice_UnknownLabelIgnored(t *testing.T) {
	item := pizza()
	got := UnitPrice(item.Price, Selections{"spice": Choose("Volcanic")}, item)

	if !got.Equal(dec("200")) {
		t.Errorf("expected 200, got %s", got)
	}
}

func TestUnitPrice_UnknownKeyIgnored(t *testing.T) {
	item := pizza()
	got := UnitPrice(item.Price, Selections{"olives": Toggle()}, item)

	if !got.Equal(dec("200")) {
		t.Errorf("expected 200, got %s", got)
	}
}

func TestUnitPrice_UnchosenAddonIgnored(t *testing.T) {
	item := pizza()
	got := UnitPrice(item.Price, Selections{"cheese": {}}, item)

	if !got.Equal(dec("200")) {
		t.Errorf("expected 200, got %s", got)
	}
}

func TestUnitPrice_EqualsBasePlusSurcharge(t *testing.T) {
	item := pizza()
	cases := []Selections{
		nil,
		{},
		{"cheese": Toggle()},
		{"spice": Choose("Hot")},
		{"spice": Choose("Mild"), "cheese": Toggle()},
		{"spice": Choose("Unknown"), "cheese": Toggle(), "extra": Choose("x")},
	}

	for _, sel := range cases {
		unit := UnitPrice(item.Price, sel, item)
		surcharge := CustomizationSurcharge(sel, item)
		if !unit.Equal(item.Price.Add(surcharge)) {
			t.Errorf("selections %v: unit %s != base %s + surcharge %s", sel, unit, item.Price, surcharge)
		}
	}
}

func TestCustomizationSurcharge_ExcludesBase(t *testing.T) {
	item := pizza()
	got := CustomizationSurcharge(Selections{"cheese": Toggle(), "spice": Choose("Hot")}, item)

	if !got.Equal(dec("70")) {
		t.Errorf("expected 70, got %s", got)
	}
}

func TestCustomizationDisplay_ItemOrder(t *testing.T) {
	item := pizza()
	// Map order is irrelevant; output follows the item's customization order.
	sel := Selections{"spice": Choose("Hot"), "cheese": Toggle()}

	got := CustomizationDisplay(sel, item)
	want := "— Extra Cheese (+₹50), Hot"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCustomizationDisplay_Empty(t *testing.T) {
	item := pizza()

	if got := CustomizationDisplay(nil, item); got != "" {
		t.Errorf("expected empty display for nil selections, got %q", got)
	}
	if got := CustomizationDisplay(Selections{"cheese": Toggle()}, lassi()); got != "" {
		t.Errorf("expected empty display for item without customizations, got %q", got)
	}
}

func TestCustomizationDisplay_InvalidLabelShowsNothing(t *testing.T) {
	item := pizza()

	if got := CustomizationDisplay(Selections{"spice": Choose("Volcanic")}, item); got != "" {
		t.Errorf("expected empty display, got %q", got)
	}
}
