package scope

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rileyhilliard/livescope/internal/terminal"
)

// KeyMap defines the runtime key bindings.
type KeyMap struct {
	Quit            key.Binding
	ToggleParticles key.Binding
}

// DefaultKeys are the bindings shown in the info panel. ctrl+c is bound
// because raw mode stops the terminal from turning it into SIGINT.
var DefaultKeys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ToggleParticles: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle particles"),
	),
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Quit, k.ToggleParticles}
}

// HelpLine renders the bindings as one sentence, e.g.
// "Press 'q' to quit, 'p' to toggle particles".
func (k KeyMap) HelpLine() string {
	var parts []string
	for _, b := range k.Bindings() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, fmt.Sprintf("'%s' to %s", h.Key, h.Desc))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Press " + strings.Join(parts, ", ")
}

// HandleKey applies a key press to the model and reports whether it was
// bound to anything.
func (m *Model) HandleKey(k terminal.Key) bool {
	switch {
	case key.Matches(k, m.keys.Quit):
		m.running = false
		return true

	case key.Matches(k, m.keys.ToggleParticles):
		m.particles.Toggle()
		return true
	}

	return false
}
