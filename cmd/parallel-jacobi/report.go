package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/simonhorlick/parallel-jacobi/jtimer"
)

const timingsDir = "timings"

// persistSerialBaseline writes root's timer tree to timings/serial_timers.txt,
// the baseline a later multi-worker run reads back to compute speedup.
func persistSerialBaseline(root *jtimer.Node) error {
	if err := os.MkdirAll(timingsDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(timingsDir, "serial_timers.txt"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jtimer.Serialize(f, root)
}

// loadSerialBaseline reads the persisted serial baseline. A missing file
// is reported via ok=false rather than an error, matching spec.md §4.6's
// "diagnostic but not fatal" contract for an absent baseline.
func loadSerialBaseline(log zerolog.Logger) (*jtimer.Node, bool) {
	path := filepath.Join(timingsDir, "serial_timers.txt")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("no serial baseline found; run with --workers 1 first to record one")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("failed to open serial baseline")
		}
		return nil, false
	}
	defer f.Close()

	baseline, err := jtimer.Parse(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("serial baseline is malformed, ignoring")
		return nil, false
	}
	return baseline, true
}

// persistComparison appends this run's (workers, elapsed, speedup) for
// the root "run" node to the threads-vs-elapsed and threads-vs-speedup
// tables, and writes a fresh per-worker-count efficiency breakdown.
func persistComparison(workers int, root *jtimer.Node, comparisons []jtimer.Comparison) error {
	if err := os.MkdirAll(timingsDir, 0o755); err != nil {
		return err
	}

	var runElapsed, runSpeedup float64
	for _, c := range comparisons {
		if c.Name == root.Name {
			runSpeedup = c.Speedup
		}
	}
	runElapsed = root.Seconds()

	if err := appendLine(filepath.Join(timingsDir, "threads_v_elapsed.txt"), fmt.Sprintf("%d %g", workers, runElapsed)); err != nil {
		return err
	}
	if err := appendLine(filepath.Join(timingsDir, "threads_v_speedup.txt"), fmt.Sprintf("%d %g", workers, runSpeedup)); err != nil {
		return err
	}

	effPath := filepath.Join(timingsDir, fmt.Sprintf("efficiency%d.txt", workers))
	f, err := os.Create(effPath)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, c := range comparisons {
		if !c.Matched {
			fmt.Fprintf(f, "%s unmatched\n", c.Name)
			continue
		}
		fmt.Fprintf(f, "%s %g %g\n", c.Name, c.Speedup, c.Efficiency)
	}
	return nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, line)
	return err
}
