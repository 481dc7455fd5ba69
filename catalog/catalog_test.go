package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedMenu(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 9, c.Len())
	assert.Equal(t, []string{"Pizza", "Starters", "Main Course", "Beverages", "Desserts"}, c.Categories())

	pizza, ok := c.Get("margherita-pizza")
	require.True(t, ok)
	assert.True(t, pizza.Price.Equal(decimal.NewFromInt(200)))
	require.Len(t, pizza.Customizations, 2)

	cheese := pizza.Customizations[0]
	assert.Equal(t, "extra-cheese", cheese.ID)
	assert.Equal(t, KindAddon, cheese.Kind)
	assert.True(t, cheese.Price.Equal(decimal.NewFromInt(50)))

	spice := pizza.Customizations[1]
	assert.Equal(t, "spice-level", spice.ID)
	hot, ok := spice.FindOption("Hot")
	require.True(t, ok)
	assert.True(t, hot.Price.Equal(decimal.NewFromInt(20)))
}

func TestGet_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestSearch_MatchesNameAndDescription(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	byName := c.Search("PIZZA")
	require.Len(t, byName, 2)
	assert.Equal(t, "margherita-pizza", byName[0].ID)
	assert.Equal(t, "farmhouse-pizza", byName[1].ID)

	byDescription := c.Search("mozzarella")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "margherita-pizza", byDescription[0].ID)

	assert.Len(t, c.Search("   "), c.Len())
	assert.Empty(t, c.Search("sushi"))
}

func TestFilter_GroupsMatches(t *testing.T) {
	items := []MenuItem{
		{ID: "a", Name: "Paneer Roll", Price: decimal.NewFromInt(100), Category: "Starters"},
		{ID: "b", Name: "Paneer Curry", Price: decimal.NewFromInt(200), Category: "Main Course"},
		{ID: "c", Name: "Paneer Surprise", Price: decimal.NewFromInt(50)},
		{ID: "d", Name: "Lassi", Price: decimal.NewFromInt(60), Category: "Beverages"},
	}
	c, err := New(items)
	require.NoError(t, err)

	groups := c.Filter("paneer")

	require.Len(t, groups, 3)
	assert.Equal(t, "Starters", groups[0].Category)
	assert.Equal(t, "Main Course", groups[1].Category)
	assert.Equal(t, OtherCategory, groups[2].Category)
	assert.Equal(t, "c", groups[2].Items[0].ID)
}

func TestFilter_EmptyTermGroupsEverything(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	groups := c.Filter("")
	require.NotEmpty(t, groups)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
		for _, item := range g.Items {
			assert.Equal(t, g.Category, item.CategoryOrOther())
		}
	}
	assert.Equal(t, c.Len(), total)
	assert.Equal(t, "margherita-pizza", groups[0].Items[0].ID)
}

func TestItems_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	items := c.Items()
	items[0].Name = "changed"

	first, _ := c.Get(items[0].ID)
	assert.NotEqual(t, "changed", first.Name)
}

func TestNew_Validation(t *testing.T) {
	price := decimal.NewFromInt(10)
	tests := []struct {
		name  string
		items []MenuItem
	}{
		{"missing id", []MenuItem{{Name: "x", Price: price}}},
		{"missing name", []MenuItem{{ID: "x", Price: price}}},
		{"negative price", []MenuItem{{ID: "x", Name: "x", Price: decimal.NewFromInt(-1)}}},
		{"duplicate id", []MenuItem{{ID: "x", Name: "x", Price: price}, {ID: "x", Name: "y", Price: price}}},
		{"duplicate customization", []MenuItem{{ID: "x", Name: "x", Price: price, Customizations: []CustomizationSpec{
			{ID: "c", Name: "C", Kind: KindAddon, Price: price},
			{ID: "c", Name: "C", Kind: KindAddon, Price: price},
		}}}},
		{"select without options", []MenuItem{{ID: "x", Name: "x", Price: price, Customizations: []CustomizationSpec{
			{ID: "s", Name: "S", Kind: KindSelect},
		}}}},
		{"repeated option", []MenuItem{{ID: "x", Name: "x", Price: price, Customizations: []CustomizationSpec{
			{ID: "s", Name: "S", Kind: KindSelect, Options: []Option{{Label: "A"}, {Label: "A"}}},
		}}}},
		{"unknown kind", []MenuItem{{ID: "x", Name: "x", Price: price, Customizations: []CustomizationSpec{
			{ID: "s", Name: "S", Kind: Kind("radio")},
		}}}},
		{"negative addon", []MenuItem{{ID: "x", Name: "x", Price: price, Customizations: []CustomizationSpec{
			{ID: "a", Name: "A", Kind: KindAddon, Price: decimal.NewFromInt(-5)},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			require.Error(t, err)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"data":[{"id":"tea","name":"Masala Chai","price":"60","category":"Beverages",
		"customizations":[{"id":"size","name":"Size","type":"select","options":[{"label":"Regular","price":0},{"label":"Large","price":25}]}]}]}`)

	c, err := Parse(data, FormatJSON)
	require.NoError(t, err)

	tea, ok := c.Get("tea")
	require.True(t, ok)
	require.Len(t, tea.Customizations, 1)
	large, ok := tea.Customizations[0].FindOption("Large")
	require.True(t, ok)
	assert.True(t, large.Price.Equal(decimal.NewFromInt(25)))
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("data:\n  - id: x\n    name: X\n    price: 1\n    colour: red\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"data":[{"id":"x","name":"X","price":1,"colour":"red"}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`{}`), Format("toml"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  - id: x\n    name: X\n    price: 12.5\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	item, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, "12.5", item.Price.String())
	assert.Equal(t, OtherCategory, item.CategoryOrOther())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "menu.txt"))
	assert.Error(t, err)
}
