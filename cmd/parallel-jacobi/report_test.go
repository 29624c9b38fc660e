package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhorlick/parallel-jacobi/jtimer"
)

// chdirTemp switches the working directory to a fresh temp dir for the
// duration of the test, since the timing files are written relative to
// the current directory, matching the original driver's behavior.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestPersistAndLoadSerialBaseline(t *testing.T) {
	chdirTemp(t)

	root := jtimer.New("run")
	root.Start()
	root.Stop()
	require.NoError(t, persistSerialBaseline(root))

	_, err := os.Stat(filepath.Join(timingsDir, "serial_timers.txt"))
	require.NoError(t, err)

	log := zerolog.Nop()
	baseline, ok := loadSerialBaseline(log)
	require.True(t, ok)
	assert.Equal(t, "run", baseline.Name)
}

func TestLoadSerialBaselineMissing(t *testing.T) {
	chdirTemp(t)

	log := zerolog.Nop()
	_, ok := loadSerialBaseline(log)
	assert.False(t, ok)
}

func TestPersistComparison(t *testing.T) {
	chdirTemp(t)

	root := jtimer.New("run")
	comparisons := []jtimer.Comparison{
		{Name: "run", Speedup: 2, Efficiency: 0.5, Matched: true},
		{Name: "pre-multiplication", Matched: false},
	}
	require.NoError(t, persistComparison(4, root, comparisons))

	_, err := os.Stat(filepath.Join(timingsDir, "threads_v_elapsed.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(timingsDir, "threads_v_speedup.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(timingsDir, "efficiency4.txt"))
	require.NoError(t, err)
}
