package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/metrics"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/savers"
)

const (
	probeWindow = 240
	sparkWidth  = 24

	// frames are rebuilt at most this often, simulation ticks are not
	frameInterval = 16 * time.Millisecond
)

type TickMsg time.Time

// App drives a host from Bubble Tea messages and draws it in the terminal.
type App struct {
	host     *host.Host
	router   *host.Router
	raster   *render.Raster
	interval time.Duration
	theme    Theme
	styles   statusStyles
	log      *zap.Logger

	probe     *metrics.Series
	probeName string
	probed    int

	width, height int
	view          Viewport
	frame         string
	framed        time.Time
}

type Option func(*App)

func WithTheme(name string) Option {
	return func(a *App) { a.theme = GetTheme(name) }
}

func WithInterval(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.interval = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

func NewApp(h *host.Host, raster *render.Raster, opts ...Option) *App {
	a := &App{
		host:     h,
		router:   host.NewRouter(h),
		raster:   raster,
		interval: time.Millisecond,
		theme:    Themes[0],
		log:      zap.NewNop(),
		probe:    metrics.NewSeries("probe", probeWindow),
		probed:   host.Idle,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.styles = newStatusStyles(a.theme)
	return a
}

func (a *App) Init() tea.Cmd { return a.tick() }

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case TickMsg:
		a.step(time.Time(msg))
		return a, a.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "t", "T":
			a.theme = NextTheme(a.theme)
			a.styles = newStatusStyles(a.theme)
			a.log.Debug("theme changed", zap.String("theme", a.theme.Name))
			return a, nil
		}
		if k, ok := KeyFor(msg); ok {
			a.router.OnKeyDown(k)
		}
	case tea.MouseMsg:
		a.mouse(tea.MouseEvent(msg))
	}
	return a, nil
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	cw, ch := a.raster.Size()
	// last row is the status line
	a.view = Fit(cw, ch, w, h-1)
	a.framed = time.Time{}
	a.log.Debug("terminal resized", zap.Int("cols", w), zap.Int("rows", h), zap.Float64("scale", a.view.Scale))
}

func (a *App) mouse(ev tea.MouseEvent) {
	if ev.Action != tea.MouseActionPress {
		return
	}
	x, y, ok := a.view.ToCanvas(ev.X, ev.Y)
	if !ok {
		return
	}
	switch ev.Button {
	case tea.MouseButtonLeft:
		a.router.OnLeftClick(x, y)
	case tea.MouseButtonRight:
		a.router.OnRightClick(x, y)
	}
}

// step runs one host iteration and samples the simulation's probe. The frame
// is rebuilt once frameInterval has passed since the last one.
func (a *App) step(now time.Time) {
	a.host.Tick(a.raster)
	a.sample()
	if now.Sub(a.framed) < frameInterval {
		return
	}
	a.frame = Frame(a.raster.Image(), a.view)
	a.framed = now
}

func (a *App) sample() {
	if active := a.host.Runtime.Active; active != a.probed {
		a.probe.Reset()
		a.probeName = ""
		a.probed = active
	}
	p, ok := a.host.Simulation().(savers.Probe)
	if !ok {
		return
	}
	name, v := p.Probe()
	a.probeName = name
	a.probe.Observe(v)
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.frame)
	lines := a.view.OffsetY + a.view.Rows
	for i := lines; i < a.height-1; i++ {
		b.WriteByte('\n')
	}
	if a.frame != "" {
		b.WriteByte('\n')
	}
	b.WriteString(a.statusLine())
	return b.String()
}

func (a *App) statusLine() string {
	s := a.styles
	var parts []string
	if !a.host.Running() {
		parts = append(parts,
			GradientText("screensavers", a.theme.Primary, a.theme.Secondary),
			s.label.Render("selected")+" "+s.value.Render(a.host.Current()),
			s.keyHint.Render("←/→ select · enter start · t theme · q quit"),
		)
	} else {
		parts = append(parts,
			s.title.Render(a.host.Current()),
			s.label.Render("tick")+" "+s.value.Render(fmt.Sprint(a.host.Runtime.Tick)),
		)
		if a.probeName != "" {
			parts = append(parts,
				s.label.Render(a.probeName)+" "+s.value.Render(fmt.Sprintf("%.2f", a.probe.Last())),
				s.spark.Render(Sparkline(a.probe.Values(), sparkWidth)),
			)
		}
		parts = append(parts, s.keyHint.Render("click interact · esc menu · q quit"))
	}
	line := " " + strings.Join(parts, "  ")
	if a.width > 0 {
		return s.bar.Width(a.width).MaxWidth(a.width).Render(line)
	}
	return s.bar.Render(line)
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
