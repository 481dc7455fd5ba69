package logic

import "menucart/catalog"

// Add merges quantity of item+sel into cart. An existing entry with the same
// id keeps its position and grows; otherwise a new entry is appended.
// The merged quantity may not exceed MaxQuantity.
// The input cart is never modified.
func Add(cart Cart, item catalog.MenuItem, sel Selections, quantity int) (Cart, error) {
	if err := RequireNotEmpty(item.ID, ErrMsgMenuItemIDRequired); err != nil {
		return cart, err
	}
	if err := RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return cart, err
	}
	if err := RequireAtMost(quantity, MaxQuantity, ErrMsgQuantityTooLarge); err != nil {
		return cart, err
	}

	id := LineItemID(item.ID, sel)
	out := cart.clone()
	if i := out.indexOf(id); i >= 0 {
		// Both operands are within MaxQuantity, so the sum cannot wrap.
		merged := out[i].Quantity + quantity
		if err := RequireAtMost(merged, MaxQuantity, ErrMsgQuantityTooLarge); err != nil {
			return cart, err
		}
		out[i] = out[i].WithQuantity(merged)
		return out, nil
	}
	return append(out, NewLineItem(item, sel, quantity)), nil
}
