// Package host runs the gallery: it owns the runtime state, draws the menu
// while idle, drives the active simulation once per tick and routes pointer
// and key events.
//
// Host is not safe for concurrent use. Callers serialize Tick and the Router
// methods, which the Bubble Tea program and the headless loops both do.
package host
