package savers

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is an ordered, fixed list of screensavers. Indices wrap.
type Registry struct {
	items []Screensaver
}

func NewRegistry(items ...Screensaver) *Registry {
	return &Registry{items: append([]Screensaver(nil), items...)}
}

// Default returns the gallery in menu order.
func Default() *Registry {
	return NewRegistry(
		NewCircles(),
		NewGraph(),
		NewPendulum(),
		NewFishTank(),
		NewHourglass(),
	)
}

func (r *Registry) Len() int { return len(r.items) }

// Wrap maps any integer onto [0, Len).
func (r *Registry) Wrap(i int) int {
	n := len(r.items)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (r *Registry) At(i int) Screensaver {
	return r.items[r.Wrap(i)]
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.items))
	for i, s := range r.items {
		names[i] = s.Name()
	}
	return names
}

// Lookup resolves an index or a case-insensitive name ("fish tank",
// "fish_tank" and "fish-tank" are equivalent).
func (r *Registry) Lookup(key string) (int, error) {
	if i, err := strconv.Atoi(key); err == nil {
		if i < 0 || i >= len(r.items) {
			return 0, fmt.Errorf("index %d: %w", i, ErrUnknownScreensaver)
		}
		return i, nil
	}
	want := normalize(key)
	for i, s := range r.items {
		if normalize(s.Name()) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q (available: %s): %w", key, strings.Join(r.Names(), ", "), ErrUnknownScreensaver)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}
