package host

// Key is a keyboard code as the router understands it.
type Key string

const (
	ArrowLeft  Key = "ArrowLeft"
	ArrowRight Key = "ArrowRight"
	Space      Key = "Space"
	Enter      Key = "Enter"
	Escape     Key = "Escape"
)

// Router turns raw input into menu navigation while idle, and into pointer
// calls on the running simulation otherwise.
type Router struct {
	host *Host
}

func NewRouter(h *Host) *Router { return &Router{host: h} }

func (r *Router) OnLeftClick(x, y float64) {
	h := r.host
	if h.Running() {
		h.Runtime.Pointer(x, y, false)
		return
	}
	switch h.menu.HitTest(x, y) {
	case RegionStart:
		h.Launch()
	case RegionPrev:
		h.Navigate(-1)
	case RegionNext:
		h.Navigate(1)
	}
}

// OnRightClick reaches the simulation only; the menu ignores it.
func (r *Router) OnRightClick(x, y float64) {
	if r.host.Running() {
		r.host.Runtime.Pointer(x, y, true)
	}
}

func (r *Router) OnKeyDown(code Key) {
	h := r.host
	if h.Running() {
		if code == Escape {
			h.Escape()
		}
		return
	}
	switch code {
	case ArrowLeft:
		h.Navigate(-1)
	case ArrowRight:
		h.Navigate(1)
	case Space, Enter:
		h.Launch()
	}
}
