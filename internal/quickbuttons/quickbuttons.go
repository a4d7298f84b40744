// Package quickbuttons models the small action menus attached to posts and
// reports (edit, delete, approve, ...).
package quickbuttons

// Button is one entry of a quickbuttons list. Buttons with SubItems render as
// a drop-down "more" menu.
type Button struct {
	Key      string
	Label    string
	Href     string
	Icon     string
	Class    string
	ID       string
	Confirm  string // shown by the client before following Href
	Show     bool
	SubItems List
}

// List keeps insertion order, which is the order buttons are displayed in.
type List []Button

// Add appends a button and returns the list for chaining.
func (l List) Add(b Button) List {
	return append(l, b)
}

// Visible returns only the buttons (and sub-items) flagged Show. A parent whose
// sub-items are all hidden and which has no Href of its own is dropped.
func (l List) Visible() List {
	var out List
	for _, b := range l {
		if !b.Show {
			continue
		}
		if len(b.SubItems) > 0 {
			b.SubItems = b.SubItems.Visible()
			if len(b.SubItems) == 0 && b.Href == "" {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

