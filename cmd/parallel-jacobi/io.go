package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simonhorlick/parallel-jacobi/internal/usage"
	"github.com/simonhorlick/parallel-jacobi/matrix"
)

// readMatrix reads the stdin matrix format of spec.md §6: an integer N
// on its own token, followed by N*N whitespace-delimited floats in
// row-major order.
func readMatrix(r io.Reader) (*matrix.Symmetric, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}

	tok, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: missing matrix order", usage.ErrInput)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: matrix order must be a positive integer, got %q", usage.ErrInput, tok)
	}

	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = make([]float32, n)
		for j := 0; j < n; j++ {
			tok, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: expected %d entries, stream ended early", usage.ErrInput, n*n)
			}
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: entry (%d,%d) is not numeric: %q", usage.ErrInput, i, j, tok)
			}
			rows[i][j] = float32(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", usage.ErrInput, err)
	}

	a, err := matrix.NewSymmetricFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usage.ErrInput, err)
	}
	return a, nil
}

// formatEigenvalues renders the ascending eigenvalue spectrum as a
// single "Eigenvalues are: v1; v2; ...;" line, matching the original
// driver's report line (original_source/src/main.cc's
// "Eigenvalues are: " loop with "; " separators and default
// six-significant-digit precision).
func formatEigenvalues(values []float64) string {
	var b strings.Builder
	b.WriteString("Eigenvalues are: ")
	for _, v := range values {
		fmt.Fprintf(&b, "%.6g; ", v)
	}
	b.WriteByte('\n')
	return b.String()
}
