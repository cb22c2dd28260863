package sim

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/cartpole/ecs/system"
	"github.com/milk9111/cartpole/prefabs"
	"github.com/milk9111/cartpole/telemetry"
)

// HeadlessOptions configures a run without a window.
type HeadlessOptions struct {
	Ticks int
	// Script is a key timeline such as "left:0-120,down:120-240".
	Script string
	// Trace, when set, receives every sample as CSV.
	Trace string
}

// RunHeadless steps a fresh scene for opts.Ticks ticks and returns the
// recorded samples. A scripted reset rebuilds the scene and keeps
// recording.
func RunHeadless(specs *prefabs.Specs, opts HeadlessOptions, logger *slog.Logger) ([]telemetry.Sample, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Ticks <= 0 {
		return nil, fmt.Errorf("headless: ticks must be positive, got %d", opts.Ticks)
	}

	keys, err := system.ParseKeyScript(opts.Script)
	if err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}

	var sink telemetry.Sink
	if opts.Trace != "" {
		csvWriter, err := telemetry.CreateCSV(opts.Trace)
		if err != nil {
			return nil, fmt.Errorf("headless: %w", err)
		}
		defer func() {
			if err := csvWriter.Close(); err != nil {
				logger.Error("headless: close trace", "path", opts.Trace, "error", err)
			}
		}()
		sink = csvWriter
	}

	recorder := telemetry.NewRecorder(0, sink)
	tel := system.NewTelemetrySystem(recorder, specs.World.TimeStep(), logger)

	s, err := New(specs, keys, tel)
	if err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}

	for keys.Tick = 0; keys.Tick < opts.Ticks; keys.Tick++ {
		s.Step()
		if s.ResetRequested() {
			logger.Info("headless: reset", "tick", keys.Tick)
			if s, err = New(specs, keys, tel); err != nil {
				return nil, fmt.Errorf("headless: reset: %w", err)
			}
		}
	}

	logger.Debug("headless run finished", "ticks", opts.Ticks, "samples", len(recorder.Samples()))
	return recorder.Samples(), nil
}
