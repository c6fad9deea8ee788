package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/screensavers/internal/export"
	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/metrics"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/savers"
)

var errNoProbe = errors.New("screensaver exposes no probe")

// runHeadless ticks h n times. surface picks where tick i is drawn; observe,
// if set, runs after each tick.
func runHeadless(ctx context.Context, h *host.Host, n int, surface func(i int) render.Surface, observe func(i int)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.Tick(surface(i))
		if observe != nil {
			observe(i)
		}
	}
	return nil
}

// scratch returns a surface that only counts, cleared before every use.
func scratch(w, h float64) func(int) render.Surface {
	rec := render.NewRecorder(w, h)
	return func(int) render.Surface {
		rec.Reset()
		return rec
	}
}

func listSavers(cmd *cobra.Command, args []string) error {
	reg := savers.Default()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME")
	for i, name := range reg.Names() {
		fmt.Fprintf(w, "%d\t%s\n", i, name)
	}
	return w.Flush()
}

func renderSaver(cmd *cobra.Command, args []string) error {
	format, err := export.FormatOf(outPath)
	if err != nil {
		return err
	}
	if renderTicks < 1 || renderEvery < 1 {
		return fmt.Errorf("ticks and every must be positive")
	}

	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	idx, err := s.pick(args)
	if err != nil {
		return err
	}
	raster, err := render.NewRaster(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return err
	}

	h := s.newHost()
	h.Runtime.Selected = idx
	h.Launch()

	anim := export.NewAnimation(gifDelay, gifScale)
	capture := func(i int) bool {
		if format == export.FormatGIF {
			return i%renderEvery == 0
		}
		return i == renderTicks-1
	}
	discard := scratch(s.cfg.Canvas())
	err = runHeadless(cmd.Context(), h, renderTicks,
		func(i int) render.Surface {
			if capture(i) {
				return raster
			}
			return discard(i)
		},
		func(i int) {
			if format == export.FormatGIF && capture(i) {
				anim.Add(raster.Image())
			}
		})
	if err != nil {
		return err
	}

	switch format {
	case export.FormatPNG:
		err = export.SavePNG(outPath, raster.Image())
	case export.FormatGIF:
		err = anim.Save(outPath)
	}
	if err != nil {
		return err
	}
	s.log.Info("export written",
		zap.String("path", outPath),
		zap.String("screensaver", h.Current()),
		zap.Int("ticks", renderTicks),
		zap.Int("frames", max(anim.Len(), 1)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	return nil
}

func traceSaver(cmd *cobra.Command, args []string) error {
	if traceTicks < 1 || traceEvery < 1 {
		return fmt.Errorf("ticks and every must be positive")
	}
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	idx, err := s.pick(args)
	if err != nil {
		return err
	}
	h := s.newHost()
	h.Runtime.Selected = idx
	h.Launch()

	probe, ok := h.Simulation().(savers.Probe)
	if !ok {
		return fmt.Errorf("%s: %w", h.Current(), errNoProbe)
	}
	probeName, _ := probe.Probe()

	bounds := metrics.NewStability(math.Inf(-1), math.Inf(1))
	checkBounds := cmd.Flags().Changed("lo") || cmd.Flags().Changed("hi")
	if checkBounds {
		low, high := math.Inf(-1), math.Inf(1)
		if cmd.Flags().Changed("lo") {
			low = lo
		}
		if cmd.Flags().Changed("hi") {
			high = hi
		}
		bounds = metrics.NewStability(low, high)
	}
	series := metrics.NewSeries(probeName, traceTicks/traceEvery+1)
	drift := metrics.NewDrift(probeName)
	observed := []metrics.Metric{series, drift, bounds}

	err = runHeadless(cmd.Context(), h, traceTicks, scratch(s.cfg.Canvas()), func(i int) {
		if i%traceEvery != 0 {
			return
		}
		_, v := probe.Probe()
		for _, m := range observed {
			m.Observe(v)
		}
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, asciigraph.Plot(series.Values(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: %s every %d ticks", h.Current(), probeName, traceEvery)),
	))
	fmt.Fprintln(out)

	summary := map[string]float64{
		"min":        series.Min(),
		"max":        series.Max(),
		"mean":       series.Value(),
		"last":       series.Last(),
		drift.Name(): drift.Value(),
	}
	if checkBounds {
		summary["in_bounds"] = bounds.Value()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", series.Count())
	fmt.Fprintf(w, "min\t%.4f\n", series.Min())
	fmt.Fprintf(w, "max\t%.4f\n", series.Max())
	fmt.Fprintf(w, "mean\t%.4f\n", series.Value())
	fmt.Fprintf(w, "last\t%.4f\n", series.Last())
	fmt.Fprintf(w, "%s\t%.4f\n", drift.Name(), drift.Value())
	if checkBounds {
		fmt.Fprintf(w, "in bounds\t%.1f%%\n", 100*bounds.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if traceJSON == "" {
		return nil
	}
	trace := &export.Trace{
		Screensaver: h.Current(),
		Probe:       probeName,
		Seed:        s.rand.Seed(),
		Ticks:       traceTicks,
		Every:       traceEvery,
		Samples:     series.Values(),
		Metrics:     summary,
	}
	if err := export.SaveTrace(traceJSON, trace); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	s.log.Info("trace written", zap.String("path", traceJSON), zap.Int("samples", series.Count()))
	return nil
}

func benchSavers(cmd *cobra.Command, args []string) error {
	if benchTicks < 1 {
		return fmt.Errorf("ticks must be positive")
	}
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	indices := make([]int, s.registry.Len())
	for i := range indices {
		indices[i] = i
	}
	if len(args) > 0 {
		idx, err := s.pick(args)
		if err != nil {
			return err
		}
		indices = []int{idx}
	}

	raster, err := render.NewRaster(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return err
	}
	surfaces := []struct {
		name    string
		surface func(int) render.Surface
	}{
		{"raster", func(int) render.Surface { return raster }},
		{"recorder", scratch(s.cfg.Canvas())},
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCREENSAVER\tSURFACE\tTICKS\tTIME\tTICKS/SEC")
	for _, idx := range indices {
		for _, surf := range surfaces {
			h := s.newHost()
			h.Runtime.Selected = idx
			h.Launch()

			start := time.Now()
			if err := runHeadless(cmd.Context(), h, benchTicks, surf.surface, nil); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%.0f\n",
				h.Current(), surf.name, benchTicks, elapsed.Round(time.Microsecond),
				float64(benchTicks)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
