package viz

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/screensavers/internal/host"
)

// KeyFor translates a terminal key into a router key. Quit and theme keys
// are handled by App and never reach the router.
func KeyFor(msg tea.KeyMsg) (host.Key, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return host.ArrowLeft, true
	case tea.KeyRight:
		return host.ArrowRight, true
	case tea.KeyEnter:
		return host.Enter, true
	case tea.KeySpace:
		return host.Space, true
	case tea.KeyEsc:
		return host.Escape, true
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "h":
			return host.ArrowLeft, true
		case "l":
			return host.ArrowRight, true
		}
	}
	return "", false
}
