package logic

// SetQuantity replaces the quantity of the entry with the given id, keeping
// its position. A quantity of zero or less removes the entry; a missing id
// is a no-op. Quantities above MaxQuantity are rejected.
func SetQuantity(cart Cart, id string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Remove(cart, id), nil
	}
	if err := RequireAtMost(quantity, MaxQuantity, ErrMsgQuantityTooLarge); err != nil {
		return cart, err
	}

	out := cart.clone()
	if i := out.indexOf(id); i >= 0 {
		out[i] = out[i].WithQuantity(quantity)
	}
	return out, nil
}
