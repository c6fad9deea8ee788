// Package viz presents the gallery in a terminal.
//
// [App] is a Bubble Tea model. Each tick it runs the host against an
// off-screen raster, scales the raster down to the terminal and paints it with
// half-block cells, two canvas pixels per cell. Mouse cells are mapped back to
// canvas coordinates before they reach the router.
//
// # Key Bindings
//
//	←/→ h/l   - Select screensaver (menu)
//	Enter/Spc - Start
//	Esc       - Back to the menu
//	T         - Cycle status line themes
//	Q/Ctrl+C  - Quit
package viz
