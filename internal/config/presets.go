package config

import (
	"sort"
	"time"
)

// Presets are named canvas and pacing setups selectable with --preset.
var Presets = map[string]*Config{
	"classic": {Width: 800, Height: 600, TickInterval: time.Millisecond},
	"small":   {Width: 400, Height: 300, TickInterval: time.Millisecond},
	"wide":    {Width: 1280, Height: 720, TickInterval: time.Millisecond},
	"calm":    {Width: 800, Height: 600, TickInterval: 16 * time.Millisecond},
}

// GetPreset returns a copy of the named preset layered over the defaults, or
// nil if there is none.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.TickInterval = p.Width, p.Height, p.TickInterval
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
