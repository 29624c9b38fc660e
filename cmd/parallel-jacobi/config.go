package main

import (
	"fmt"
	"strconv"

	"github.com/simonhorlick/parallel-jacobi/internal/usage"
)

// config holds the parsed command line, mirroring the options of
// original_source/src/main.cc. --mode takes two trailing tokens (a
// kind and a value), which the standard library flag package cannot
// express directly, so argument scanning here follows the original
// driver's manual loop instead of flag.Parse.
type config struct {
	mode       string // "threshold", "iterations", or "difference"
	threshold  float64
	iterations int
	difference float64

	randomN int
	workers int
	check   bool
	quiet   bool
}

const usageText = `Usage: parallel-jacobi [options]
Where options include:
	--mode threshold T    - Terminate when the off-diagonal magnitude falls below T.
	--mode iterations I   - Terminate after I sweeps.
	--mode difference D   - Terminate when consecutive sweeps' off-diagonal magnitude differs by at most D.
	--random N            - Generate an N*N symmetric matrix with a fixed seed instead of reading stdin.
	--workers N           - Use N worker goroutines (default: GOMAXPROCS).
	--check               - Verify each eigenvalue via Gaussian elimination.
	--quiet               - Suppress eigenvalue printing.
Input: either --random N, or stdin: an integer N, then N*N floats in row-major order.
`

func defaultConfig() config {
	return config{
		mode:       "threshold",
		threshold:  1e-5,
		difference: 1e-2,
		workers:    0,
	}
}

func parseArgs(args []string) (config, error) {
	cfg := defaultConfig()
	if len(args) == 0 {
		return cfg, fmt.Errorf("%w: no arguments given", usage.ErrUsage)
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--check":
			cfg.check = true
		case "--quiet":
			cfg.quiet = true
		case "--mode":
			if i+2 >= len(args) {
				return cfg, fmt.Errorf("%w: --mode requires a kind and a value", usage.ErrUsage)
			}
			kind := args[i+1]
			valueStr := args[i+2]
			i += 2
			value, err := strconv.ParseFloat(valueStr, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: --mode %s expects a numeric value, got %q", usage.ErrUsage, kind, valueStr)
			}
			switch kind {
			case "threshold":
				cfg.mode = "threshold"
				cfg.threshold = value
			case "iterations":
				cfg.mode = "iterations"
				cfg.iterations = int(value)
			case "difference":
				cfg.mode = "difference"
				cfg.difference = value
			default:
				return cfg, fmt.Errorf("%w: unknown --mode kind %q", usage.ErrUsage, kind)
			}
		case "--random":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%w: --random requires a value", usage.ErrUsage)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return cfg, fmt.Errorf("%w: --random expects an integer, got %q", usage.ErrUsage, args[i+1])
			}
			cfg.randomN = n
			i++
		case "--workers":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%w: --workers requires a value", usage.ErrUsage)
			}
			w, err := strconv.Atoi(args[i+1])
			if err != nil {
				return cfg, fmt.Errorf("%w: --workers expects an integer, got %q", usage.ErrUsage, args[i+1])
			}
			cfg.workers = w
			i++
		default:
			return cfg, fmt.Errorf("%w: unknown option %q", usage.ErrUsage, args[i])
		}
	}
	return cfg, nil
}
