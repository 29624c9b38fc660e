package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhorlick/parallel-jacobi/internal/usage"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"--random", "4"})
	require.NoError(t, err)
	assert.Equal(t, "threshold", cfg.mode)
	assert.Equal(t, 1e-5, cfg.threshold)
	assert.Equal(t, 4, cfg.randomN)
}

func TestParseArgsModeThreshold(t *testing.T) {
	cfg, err := parseArgs([]string{"--mode", "threshold", "0.001"})
	require.NoError(t, err)
	assert.Equal(t, "threshold", cfg.mode)
	assert.Equal(t, 0.001, cfg.threshold)
}

func TestParseArgsModeIterations(t *testing.T) {
	cfg, err := parseArgs([]string{"--mode", "iterations", "10"})
	require.NoError(t, err)
	assert.Equal(t, "iterations", cfg.mode)
	assert.Equal(t, 10, cfg.iterations)
}

func TestParseArgsModeDifference(t *testing.T) {
	cfg, err := parseArgs([]string{"--mode", "difference", "0.02"})
	require.NoError(t, err)
	assert.Equal(t, "difference", cfg.mode)
	assert.Equal(t, 0.02, cfg.difference)
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := parseArgs([]string{"--random", "4", "--check", "--quiet", "--workers", "2"})
	require.NoError(t, err)
	assert.True(t, cfg.check)
	assert.True(t, cfg.quiet)
	assert.Equal(t, 2, cfg.workers)
}

func TestParseArgsEmpty(t *testing.T) {
	_, err := parseArgs(nil)
	assert.True(t, errors.Is(err, usage.ErrUsage))
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"})
	assert.True(t, errors.Is(err, usage.ErrUsage))
}

func TestParseArgsModeMissingValue(t *testing.T) {
	_, err := parseArgs([]string{"--mode", "threshold"})
	assert.True(t, errors.Is(err, usage.ErrUsage))
}

func TestParseArgsModeNonNumeric(t *testing.T) {
	_, err := parseArgs([]string{"--mode", "threshold", "oops"})
	assert.True(t, errors.Is(err, usage.ErrUsage))
}

func TestParseArgsModeUnknownKind(t *testing.T) {
	_, err := parseArgs([]string{"--mode", "bogus", "1"})
	assert.True(t, errors.Is(err, usage.ErrUsage))
}

func TestParseArgsRandomNonNumeric(t *testing.T) {
	_, err := parseArgs([]string{"--random", "oops"})
	assert.True(t, errors.Is(err, usage.ErrUsage))
}
