package logic

import (
	"bytes"
	"encoding/json"
)

// LineItemID derives the cart identity of a menu item plus its exact
// selection set. Not-chosen entries are dropped and keys are serialized in
// sorted order, so the id does not depend on how the map was built.
func LineItemID(menuItemID string, sel Selections) string {
	return menuItemID + "_" + canonicalSelections(sel)
}

func canonicalSelections(sel Selections) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding/json writes map keys in sorted order.
	if err := enc.Encode(sel.Canonical()); err != nil {
		// Selection.MarshalJSON never fails and keys are plain strings.
		panic(err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
