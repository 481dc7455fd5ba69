package catalog

import (
	"fmt"
	"strings"
)

// OtherCategory groups items that carry no category label.
const OtherCategory = "Other"

// ValidationError reports a malformed catalog entry.
type ValidationError struct {
	ItemID  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.ItemID == "" {
		return "catalog: " + e.Message
	}
	return fmt.Sprintf("catalog: item %q: %s", e.ItemID, e.Message)
}

// Group is a category with its items in catalog order.
type Group struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// Catalog is an ordered, read-only collection of menu items.
type Catalog struct {
	items []MenuItem
	index map[string]int
}

// New validates items and builds a Catalog that preserves their order.
func New(items []MenuItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]MenuItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		if _, dup := c.index[item.ID]; dup {
			return nil, &ValidationError{ItemID: item.ID, Message: "duplicate item id"}
		}
		c.index[item.ID] = i
	}
	return c, nil
}

func validateItem(item MenuItem) error {
	if strings.TrimSpace(item.ID) == "" {
		return &ValidationError{Message: "item id is required"}
	}
	if strings.TrimSpace(item.Name) == "" {
		return &ValidationError{ItemID: item.ID, Message: "name is required"}
	}
	if item.Price.IsNegative() {
		return &ValidationError{ItemID: item.ID, Message: "price cannot be negative"}
	}

	seen := make(map[string]bool, len(item.Customizations))
	for _, c := range item.Customizations {
		if c.ID == "" {
			return &ValidationError{ItemID: item.ID, Message: "customization id is required"}
		}
		if seen[c.ID] {
			return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("duplicate customization id %q", c.ID)}
		}
		seen[c.ID] = true

		switch c.Kind {
		case KindAddon:
			if c.Price.IsNegative() {
				return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("addon %q price cannot be negative", c.ID)}
			}
		case KindSelect:
			if len(c.Options) == 0 {
				return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("select %q has no options", c.ID)}
			}
			labels := make(map[string]bool, len(c.Options))
			for _, opt := range c.Options {
				if opt.Label == "" {
					return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("select %q has an option without label", c.ID)}
				}
				if labels[opt.Label] {
					return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("select %q repeats option %q", c.ID, opt.Label)}
				}
				labels[opt.Label] = true
			}
		default:
			return &ValidationError{ItemID: item.ID, Message: fmt.Sprintf("customization %q has unknown type %q", c.ID, c.Kind)}
		}
	}
	return nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id.
func (c *Catalog) Get(id string) (MenuItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[i], true
}

// Categories lists category labels in the order they first appear.
func (c *Catalog) Categories() []string {
	return categoriesOf(c.items)
}

// Search returns the items whose name or description contains term,
// ignoring case. An empty term matches everything.
func (c *Catalog) Search(term string) []MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.Items()
	}

	var out []MenuItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			out = append(out, item)
		}
	}
	return out
}

// Filter searches and groups in one step. Categories with no match are
// omitted.
func (c *Catalog) Filter(term string) []Group {
	return group(c.Search(term))
}

func categoriesOf(items []MenuItem) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		cat := item.CategoryOrOther()
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

func group(items []MenuItem) []Group {
	cats := categoriesOf(items)
	groups := make([]Group, len(cats))
	pos := make(map[string]int, len(cats))
	for i, cat := range cats {
		groups[i].Category = cat
		pos[cat] = i
	}
	for _, item := range items {
		i := pos[item.CategoryOrOther()]
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
