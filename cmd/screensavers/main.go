package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/screensavers/internal/config"
	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"github.com/san-kum/screensavers/internal/savers"
	"github.com/san-kum/screensavers/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	width      int
	height     int
	theme      string
	logFile    string
	logLevel   string
	// render
	renderTicks int
	renderEvery int
	outPath     string
	gifDelay    int
	gifScale    float64
	// trace
	traceTicks int
	traceEvery int
	lo, hi     float64
	traceJSON  string
	// bench
	benchTicks int
)

// main runs the gallery when no subcommand is given. Errors exit with
// status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "screensavers",
		Short:         "a terminal gallery of animated simulations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGallery,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "use a named canvas preset")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "status line theme")
	pf.StringVar(&logFile, "log", "", "log file (the gallery logs nowhere without one)")
	pf.StringVar(&logLevel, "log-level", "info", "log level")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list screensavers",
		Args:  cobra.NoArgs,
		RunE:  listSavers,
	}

	renderCmd := &cobra.Command{
		Use:   "render [name|index]",
		Short: "run a screensaver headless and write a png or gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSaver,
	}
	renderCmd.Flags().IntVar(&renderTicks, "ticks", 600, "ticks to run")
	renderCmd.Flags().StringVar(&outPath, "out", "screensaver.png", "output file (.png or .gif)")
	renderCmd.Flags().IntVar(&renderEvery, "every", 10, "gif: capture a frame every n ticks")
	renderCmd.Flags().IntVar(&gifDelay, "delay", 2, "gif: frame delay in 1/100 s")
	renderCmd.Flags().Float64Var(&gifScale, "scale", 0.5, "gif: frame scale in (0,1]")

	traceCmd := &cobra.Command{
		Use:   "trace [name|index]",
		Short: "run a screensaver headless and plot its probe",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceSaver,
	}
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 5000, "ticks to run")
	traceCmd.Flags().IntVar(&traceEvery, "every", 10, "sample every n ticks")
	traceCmd.Flags().Float64Var(&lo, "lo", 0, "report the share of samples at or above this")
	traceCmd.Flags().Float64Var(&hi, "hi", 0, "report the share of samples at or below this")
	traceCmd.Flags().StringVar(&traceJSON, "json", "", "also write samples and summary as json (- for stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench [name|index]",
		Short: "benchmark update and draw cost",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchSavers,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 1000, "ticks per run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %dx%d  tick %s\n", name, p.Width, p.Height, p.TickInterval)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, renderCmd, traceCmd, benchCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers the config file or preset, then explicitly set flags,
// over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log") {
		cfg.Logging.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the zap logger. The gallery owns the terminal, so without
// a log file it gets a no-op logger; headless commands log to stderr.
func newLogger(cfg config.LoggingConfig, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
		if cfg.Format != "json" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// session is what every command starts from.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	rand     *rng.Rand
	registry *savers.Registry
}

func newSession(cmd *cobra.Command, interactive bool) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Logging, interactive)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Info("config loaded",
		zap.String("file", configFile),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Duration("tick_interval", cfg.TickInterval),
		zap.Int64("seed", s))
	return &session{cfg: cfg, log: log, rand: rng.New(s), registry: savers.Default()}, nil
}

func (s *session) newHost() *host.Host {
	w, h := s.cfg.Canvas()
	return host.New(s.registry, w, h, host.WithRand(s.rand), host.WithLogger(s.log))
}

// pick resolves the optional screensaver argument, defaulting to the first.
func (s *session) pick(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return s.registry.Lookup(args[0])
}

func runGallery(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	raster, err := render.NewRaster(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return err
	}
	app := viz.NewApp(s.newHost(), raster,
		viz.WithTheme(s.cfg.Theme),
		viz.WithInterval(s.cfg.TickInterval),
		viz.WithLogger(s.log))
	return viz.Run(cmd.Context(), app)
}
