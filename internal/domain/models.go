package domain

// Rect is an axis-aligned rectangle in the host's coordinate space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether other lies fully inside r (inclusive edges).
func (r Rect) Contains(other Rect) bool {
	return other.Left() >= r.Left() &&
		other.Right() <= r.Right() &&
		other.Top() >= r.Top() &&
		other.Bottom() <= r.Bottom()
}

// Translate returns r shifted by dx and dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Item is one child of the control. Its attributes are externally
// observable; the selection marker lives here so styling hooks and the
// initial selection can come from outside the selection machinery.
type Item struct {
	Label string
	Value string

	attrs map[string]string
}

// NewItem creates an item whose value defaults to its label.
func NewItem(label string) *Item {
	return &Item{Label: label, Value: label}
}

// Attr returns the value of the named attribute and whether it is set.
func (it *Item) Attr(name string) (string, bool) {
	if it.attrs == nil {
		return "", false
	}
	v, ok := it.attrs[name]
	return v, ok
}

// HasAttr reports whether the named attribute is present.
func (it *Item) HasAttr(name string) bool {
	_, ok := it.Attr(name)
	return ok
}

// SetAttr sets the named attribute.
func (it *Item) SetAttr(name, value string) {
	if it.attrs == nil {
		it.attrs = make(map[string]string)
	}
	it.attrs[name] = value
}

// RemoveAttr clears the named attribute. Removing an absent attribute is
// a no-op.
func (it *Item) RemoveAttr(name string) {
	if it.attrs == nil {
		return
	}
	delete(it.attrs, name)
}
