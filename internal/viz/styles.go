package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/screensavers/internal/gfx"
)

type statusStyles struct {
	bar     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	keyHint lipgloss.Style
	spark   lipgloss.Style
}

func newStatusStyles(t Theme) statusStyles {
	base := lipgloss.NewStyle().Background(t.Background)
	return statusStyles{
		bar:     base.Foreground(t.Text),
		title:   base.Bold(true).Foreground(t.Primary),
		label:   base.Foreground(t.Muted),
		value:   base.Bold(true).Foreground(t.Secondary),
		keyHint: base.Italic(true).Foreground(t.Muted),
		spark:   base.Foreground(t.Accent),
	}
}

// GradientText colours each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	colors := gfx.Gradient(gfx.Hex(string(start)), gfx.Hex(string(end)), len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].String())).Render(string(r)))
	}
	return b.String()
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last width values as block heights scaled between
// their own min and max.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(sparkChars)-1))
		idx = min(max(idx, 0), len(sparkChars)-1)
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}
