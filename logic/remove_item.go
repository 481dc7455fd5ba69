package logic

// Remove drops the entry with the given id. A missing id is a no-op.
func Remove(cart Cart, id string) Cart {
	out := make(Cart, 0, len(cart))
	for _, li := range cart {
		if li.ID != id {
			out = append(out, li)
		}
	}
	return out
}
