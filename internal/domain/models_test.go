package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, 10, r.Left())
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 20, r.Top())
	assert.Equal(t, 60, r.Bottom())
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	assert.True(t, outer.Contains(Rect{X: 10, Y: 10, Width: 10, Height: 10}))
	assert.True(t, outer.Contains(outer), "containment is inclusive")
	assert.False(t, outer.Contains(Rect{X: 95, Y: 10, Width: 10, Height: 10}), "overhangs the right edge")
	assert.False(t, outer.Contains(Rect{X: -5, Y: 10, Width: 10, Height: 10}), "overhangs the left edge")
	assert.False(t, outer.Contains(Rect{X: 150, Y: 150, Width: 10, Height: 10}), "fully outside")
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	moved := r.Translate(3, -2)

	assert.Equal(t, Rect{X: 8, Y: 3, Width: 10, Height: 10}, moved)
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 10, Height: 10}, r, "original is unchanged")
}

func TestItemAttributes(t *testing.T) {
	item := NewItem("alpha")

	assert.Equal(t, "alpha", item.Label)
	assert.Equal(t, "alpha", item.Value)
	assert.False(t, item.HasAttr("data-selected"))

	item.SetAttr("data-selected", "")
	assert.True(t, item.HasAttr("data-selected"))

	v, ok := item.Attr("data-selected")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	item.RemoveAttr("data-selected")
	assert.False(t, item.HasAttr("data-selected"))

	// Removing an absent attribute is a no-op
	item.RemoveAttr("data-selected")
	assert.False(t, item.HasAttr("data-selected"))
}
