// Command parallel-jacobi runs the parallel block Jacobi eigensolver
// against a symmetric matrix read from stdin, or against a deterministic
// randomly generated one, and reports timing, eigenvalues, and optional
// singularity checks. It implements spec.md §6's external interface.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/simonhorlick/parallel-jacobi/convergence"
	"github.com/simonhorlick/parallel-jacobi/gaussian"
	"github.com/simonhorlick/parallel-jacobi/internal/workerpool"
	"github.com/simonhorlick/parallel-jacobi/jtimer"
	"github.com/simonhorlick/parallel-jacobi/matrix"
	"github.com/simonhorlick/parallel-jacobi/pairing"
	"github.com/simonhorlick/parallel-jacobi/randsym"
	"github.com/simonhorlick/parallel-jacobi/sweep"
)

// randomSeed is fixed, matching the original driver's srand(0) contract
// (spec.md §9): --random N is reproducible run to run.
const randomSeed = 0

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usageText)
		return 1
	}

	a, err := loadMatrix(cfg, stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	original := a.Clone()

	mon := monitorFor(cfg)
	pool := workerpool.New(cfg.workers)
	defer pool.Close()

	sched := pairing.Sweep(a.Size())
	root := jtimer.New("run")
	eng := sweep.New(pool)

	root.Start()
	res := eng.Run(context.Background(), a, mon, sched, root)
	root.Stop()

	fmt.Fprintf(stdout, "parallel-jacobi: order=%d workers=%d mode=%s\n", a.ActualSize(), pool.NumWorkers(), cfg.mode)
	fmt.Fprintf(stdout, "status=%s sweeps=%d rounds=%d off=%g elapsed=%s\n", res.Status, res.Sweeps, res.Rounds, res.Off, root.Elapsed)

	if res.Status != sweep.Converged {
		log.Warn().Str("status", res.Status.String()).Int("sweeps", res.Sweeps).Msg("sweep did not converge normally")
	}

	reportTimings(log, pool.NumWorkers(), root)

	if !cfg.quiet {
		values := append([]float64(nil), a.Diagonal()...)
		sort.Float64s(values)
		fmt.Fprint(stdout, formatEigenvalues(values))

		if cfg.check {
			runCheck(log, stdout, original, values)
		}
	}

	return 0
}

func loadMatrix(cfg config, stdin *os.File) (*matrix.Symmetric, error) {
	if cfg.randomN > 0 {
		return randsym.Generate(cfg.randomN, randomSeed), nil
	}
	a, err := readMatrix(stdin)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func monitorFor(cfg config) convergence.Monitor {
	switch cfg.mode {
	case "iterations":
		return convergence.MaxIterations(cfg.iterations)
	case "difference":
		return convergence.RelativeDifference(cfg.difference)
	default:
		return convergence.Threshold(cfg.threshold)
	}
}

// reportTimings persists this run's timer tree and, if workers == 1,
// records it as the new serial baseline; otherwise it compares against
// whatever baseline is already on disk.
func reportTimings(log zerolog.Logger, workers int, root *jtimer.Node) {
	if workers == 1 {
		if err := persistSerialBaseline(root); err != nil {
			log.Warn().Err(err).Msg("failed to persist serial baseline")
		}
		return
	}

	baseline, ok := loadSerialBaseline(log)
	if !ok {
		return
	}
	comparisons := jtimer.Zip(baseline, root, workers)
	if err := persistComparison(workers, root, comparisons); err != nil {
		log.Warn().Err(err).Msg("failed to persist timing comparison")
	}
}

// runCheck verifies every reported eigenvalue by confirming A - lambda*I
// is singular via Gaussian elimination, printing the literal
// "invertible"/"singular" verdict the original driver reports
// (original_source/src/main.cc's
// "The matrix given by A-<lambda>*I is " << (s?"invertible":"singular")).
// A genuine eigenvalue yields "singular"; "invertible" means the check
// failed, which is logged as a diagnostic but never changes the process
// exit code, per spec.md §7's "diagnostic" contract for --check.
func runCheck(log zerolog.Logger, stdout *os.File, original *matrix.Symmetric, values []float64) {
	fmt.Fprintln(stdout, "\nVerifying eigenvalues using Gaussian elimination")
	for _, lambda := range values {
		shifted := original.Clone()
		for i := 0; i < shifted.ActualSize(); i++ {
			shifted.Set(i, i, shifted.At(i, i)-float32(lambda))
		}

		verdict := "singular"
		if gaussian.Invertible(shifted) {
			verdict = "invertible"
			log.Warn().Float64("eigenvalue", lambda).Msg("check failed: A - lambda*I is invertible, expected singular")
		}
		fmt.Fprintf(stdout, "The matrix given by A-%.4f*I is %s\n", lambda, verdict)
	}
}
