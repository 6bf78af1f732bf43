package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/config"
	"selectbox/internal/eventbus"
	"selectbox/internal/items"
	"selectbox/internal/ui/coordinator"
	"selectbox/internal/ui/input"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/query"
	"selectbox/internal/ui/services/search"
	"selectbox/internal/ui/views"
)

// Chrome rows around the list: padding, title and its margin, status
// bar and its margin, help hint.
const chromeRows = 8

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  items.ChildStore

	control    *coordinator.Control
	layout     *query.Service
	search     *search.Service
	dispatcher *input.Dispatcher
	renderer   *views.Renderer

	width  int
	height int

	jumpInput textinput.Model
	jumping   bool

	statusMsg string
	accepted  bool
	quitting  bool

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store items.ChildStore) *Model {
	layout := query.NewService()
	layout.SetQueryFunction(store.Len)

	control := coordinator.NewControl(bus, store, cfg)
	control.SetGeometryFunctions(layout.ItemBounds, layout.VisibleRegion)
	control.SetResolveFunction(layout.HitTest)
	control.SetScrollFunction(layout.ScrollTo)

	// Label search for the jump prompt. Jumps are programmatic, so they
	// go through the setter and emit no change events.
	searchSvc := search.NewService(events.NewBus())
	searchSvc.SetQueryFunctions(store.Len, func(i int) string {
		if item := store.At(i); item != nil {
			return item.Label
		}
		return ""
	})
	searchSvc.SetNavigateFunction(func(i int) {
		control.SetSelectedIndex(i)
		layout.ScrollTo(i)
	})

	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "index or text"
	ti.CharLimit = 64
	ti.Width = 24

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		control:      control,
		layout:       layout,
		search:       searchSvc,
		dispatcher:   input.NewDispatcher(),
		renderer:     views.NewRenderer(),
		jumpInput:    ti,
		helpRenderer: NewHelpRenderer(),
	}

	// Markers placed on items before startup plus configured indices
	// form the initial selection
	control.AdoptInitialSelection(cfg.Selected)

	// The list starts focused so keyboard navigation works immediately
	control.FocusGained(m.dispatcher)

	return m
}

// Control exposes the selection control for the host application
func (m *Model) Control() *coordinator.Control {
	return m.control
}

// Accepted reports whether the user accepted the selection with Enter
func (m *Model) Accepted() bool {
	return m.accepted
}

// SetProgram stores the program reference for pager terminal handoff
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetViewport(m.listHeight(), m.contentWidth())
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager error: %v", msg.err)
			m.statusMsg = "help unavailable"
		}
		return m, nil

	case EventMsg:
		m.handleBusEvent(msg.Event)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keys: the ambient dispatcher gets first claim while
// the control is focused; unclaimed keys fall through to the host keys.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.jumping {
		return m.handleJumpKey(msg)
	}

	if m.dispatcher.Dispatch(msg) {
		// Claimed: default handling is suppressed
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		m.accepted = true
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab:
		m.toggleFocus()
		return m, nil
	case tea.KeyEsc:
		if m.search.Query() != "" {
			m.search.ClearSearch()
			m.statusMsg = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.control.SetMultiple(!m.control.Multiple())
		return m, nil
	case "n":
		m.search.NavigateNext()
		m.updateSearchStatus()
		return m, nil
	case "N":
		m.search.NavigatePrevious()
		m.updateSearchStatus()
		return m, nil
	case "?":
		return m, m.showHelpCmd()
	case ":":
		m.jumping = true
		m.jumpInput.Reset()
		m.jumpInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// updateSearchStatus reflects the active search on the status line
func (m *Model) updateSearchStatus() {
	if m.search.Query() == "" {
		return
	}
	if m.search.MatchCount() == 0 {
		m.statusMsg = fmt.Sprintf("no matches for %q", m.search.Query())
		return
	}
	m.statusMsg = fmt.Sprintf("%d matches for %q", m.search.MatchCount(), m.search.Query())
}

// handleJumpKey drives the jump prompt: a number jumps to that index,
// anything else starts a label search. Both commit through the
// programmatic setter, so no change events fire.
func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.jumping = false
		m.jumpInput.Blur()
		value := strings.TrimSpace(m.jumpInput.Value())
		if idx, err := strconv.Atoi(value); err == nil {
			m.control.SetSelectedIndex(idx)
			m.layout.ScrollTo(idx)
		} else if value != "" {
			m.search.StartSearch(value)
			m.updateSearchStatus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// handleMouse routes pointer input into the control
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.UISettings.MouseEnabled {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.layout.ScrollBy(-1)
	case tea.MouseButtonWheelDown:
		m.layout.ScrollBy(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		// A press gives the list focus before it selects
		if !m.control.Focused() {
			m.control.FocusGained(m.dispatcher)
		}
		x := msg.X - m.listOriginX()
		y := msg.Y - m.listOriginY()
		m.control.HandlePress(x, y, msg.Shift || msg.Ctrl, false)
	}

	return m, nil
}

// toggleFocus moves keyboard ownership between the list and the host
func (m *Model) toggleFocus() {
	if m.control.Focused() {
		m.control.FocusLost()
	} else {
		m.control.FocusGained(m.dispatcher)
	}
}

// handleBusEvent updates the status line from application events
func (m *Model) handleBusEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ChangeEvent:
		m.statusMsg = "selection changed"
	case eventbus.ModeChangedEvent:
		if e.Multiple {
			m.statusMsg = "multiple selection enabled"
		} else {
			m.statusMsg = "single selection"
		}
	case eventbus.FocusGainedEvent:
		m.statusMsg = "list focused"
	case eventbus.FocusLostEvent:
		m.statusMsg = "list blurred"
	case eventbus.SelectionAdoptedEvent:
		m.statusMsg = fmt.Sprintf("%d preselected", len(e.Indices))
	case eventbus.AppReadyEvent:
		m.statusMsg = fmt.Sprintf("%d items", e.ItemCount)
	case eventbus.ChildrenChangedEvent:
		m.statusMsg = fmt.Sprintf("%d items", e.Length)
	case eventbus.ScanCompletedEvent:
		m.statusMsg = fmt.Sprintf("scan finished, %d items found", e.ItemsFound)
	}
}

// showHelpCmd runs the ov pager outside the Bubble Tea screen
func (m *Model) showHelpCmd() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	styles := m.renderer.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.config.UISettings.Title))
	b.WriteString("\n")

	children := m.store.All()
	list := m.renderer.RenderList(
		children,
		m.control.MarkerName(),
		m.layout.Offset(),
		m.listHeight(),
		m.contentWidth(),
	)

	border := styles.BlurBorder
	if m.control.Focused() {
		border = styles.FocusBorder
	}
	b.WriteString(border.Width(m.contentWidth() + 2).Render(list))
	b.WriteString("\n")

	above, below := m.renderer.RenderScrollIndicators(m.layout.Offset(), m.listHeight(), len(children))
	if above != "" || below != "" {
		b.WriteString(styles.Scroll.Render(strings.TrimSpace(above + " " + below)))
		b.WriteString("\n")
	}

	if m.config.UISettings.ShowStatusBar {
		b.WriteString(m.renderer.RenderStatusBar(
			len(m.control.SelectedChildren()),
			m.store.Len(),
			m.control.Multiple(),
			m.control.Focused(),
		))
		b.WriteString("\n")
		if m.statusMsg != "" {
			b.WriteString(styles.Dim.Render(m.statusMsg))
			b.WriteString("\n")
		}
	}

	if m.jumping {
		b.WriteString(styles.Prompt.Render(m.jumpInput.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderer.RenderHelpHint(m.control.Multiple()))
	}

	return styles.Main.Render(lipgloss.NewStyle().MaxWidth(m.width).Render(b.String()))
}

// listHeight returns the number of visible list rows
func (m *Model) listHeight() int {
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

// contentWidth returns the usable list width in cells
func (m *Model) contentWidth() int {
	w := m.width - 6
	if w < 10 {
		w = 10
	}
	return w
}

// listOriginX returns the screen column of the list's first cell
func (m *Model) listOriginX() int {
	// Main padding plus the border column
	return 3
}

// listOriginY returns the screen row of the list's first cell
func (m *Model) listOriginY() int {
	// Main padding, title and its margin, border row
	return 4
}
