package views

import (
	"fmt"
	"strings"

	"selectbox/internal/domain"
)

// Renderer draws the child list from the host's live collection. It
// reads markers directly off the items so external marker changes show
// up without any bookkeeping here.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new list renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderList renders the visible window of children. offset is the
// index of the first visible row; height is the number of rows shown.
func (r *Renderer) RenderList(children []*domain.Item, markerName string, offset, height, width int) string {
	var b strings.Builder

	if len(children) == 0 {
		b.WriteString(r.styles.Dim.Render("(no items)"))
		return b.String()
	}

	end := offset + height
	if end > len(children) {
		end = len(children)
	}

	for i := offset; i < end; i++ {
		item := children[i]
		selected := item.HasAttr(markerName)

		marker := "  "
		if selected {
			marker = r.styles.Marker.Render("▪ ")
		}

		label := item.Label
		if maxLabel := width - 4; maxLabel > 0 && len(label) > maxLabel {
			label = label[:maxLabel-1] + "…"
		}

		line := fmt.Sprintf("%s%s", marker, label)
		if selected {
			line = r.styles.SelectedBg.Render(line)
		} else {
			line = r.styles.Item.Render(line)
		}

		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderScrollIndicators returns the above/below markers for a scrolled
// list, or empty strings when the respective edge is visible
func (r *Renderer) RenderScrollIndicators(offset, height, total int) (above, below string) {
	if offset > 0 {
		above = r.styles.Scroll.Render("↑ more")
	}
	if offset+height < total {
		below = r.styles.Scroll.Render("↓ more")
	}
	return above, below
}

// RenderStatusBar renders the selection summary line
func (r *Renderer) RenderStatusBar(selectedCount, total int, multiple, focused bool) string {
	mode := "single"
	if multiple {
		mode = "multiple"
	}
	focus := "blurred"
	if focused {
		focus = "focused"
	}
	return r.styles.Status.Render(
		fmt.Sprintf("%d/%d selected · %s · %s", selectedCount, total, mode, focus))
}

// RenderHelpHint renders the one-line key hint
func (r *Renderer) RenderHelpHint(multiple bool) string {
	hint := "↑/↓ navigate · pgup/pgdn page · home/end jump · enter accept · ? help · q quit"
	if multiple {
		hint = "click+shift toggle · " + hint
	}
	return r.styles.Help.Render(hint)
}
