package input

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyMsg re-exports the Bubble Tea key message so consumers of the
// dispatcher do not need the tea import themselves
type KeyMsg = tea.KeyMsg

// KeyHandler processes one key message and reports whether it claimed
// the key. A claimed key is not offered to later handlers and its
// default handling is suppressed.
type KeyHandler func(msg tea.KeyMsg) bool

// binding gives each attached handler an identity for detachment
type binding struct {
	handler KeyHandler
}

// Dispatcher is the ambient keyboard source. Controls attach a handler
// while focused and detach it on focus loss; handlers run in attach
// order, matching host dispatch order.
type Dispatcher struct {
	mu       sync.Mutex
	bindings []*binding
}

// NewDispatcher creates a new key dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach registers a handler and returns its release function. The
// release is one-shot: calling it more than once detaches exactly one
// registration, so rapid focus cycles cannot double-release.
func (d *Dispatcher) Attach(handler KeyHandler) func() {
	b := &binding{handler: handler}

	d.mu.Lock()
	d.bindings = append(d.bindings, b)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.detach(b)
		})
	}
}

func (d *Dispatcher) detach(b *binding) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, bound := range d.bindings {
		if bound == b {
			d.bindings = append(d.bindings[:i], d.bindings[i+1:]...)
			return
		}
	}
}

// HandlerCount returns the number of attached handlers
func (d *Dispatcher) HandlerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.bindings)
}

// Dispatch offers a key to the attached handlers in order and reports
// whether any of them claimed it
func (d *Dispatcher) Dispatch(msg tea.KeyMsg) bool {
	d.mu.Lock()
	bindings := make([]*binding, len(d.bindings))
	copy(bindings, d.bindings)
	d.mu.Unlock()

	for _, b := range bindings {
		if b.handler(msg) {
			return true
		}
	}
	return false
}
