package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	logger := log.New(&stderr, "wtgen: ", 0)
	err := run(context.Background(), args, &stdout, logger)
	return stdout.String(), stderr.String(), err
}

func TestRunPositionalWritesTables(t *testing.T) {
	dir := t.TempDir()
	_, logs, err := runCmd(t, "-out", dir, "SQR", "256", "44100", "1000")
	require.NoError(t, err)

	require.Contains(t, logs, "1000 Hz: 11 harmonics")
	require.Contains(t, logs, "16000 Hz: 1 harmonics")

	full, err := os.ReadFile(filepath.Join(dir, "SQR_full.txt"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(full), "\n{\n-0.0f, "), "got %q", string(full[:20]))
	require.Equal(t, 5, strings.Count(string(full), "\n},\n"))

	for _, base := range []string{"1000", "2000", "4000", "8000", "16000"} {
		data, err := os.ReadFile(filepath.Join(dir, "SQR_"+base+".txt"))
		require.NoError(t, err)
		require.Equal(t, 256, strings.Count(string(data), "f,"))
	}
}

func TestRunFlagsPlotWAVVerify(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCmd(t,
		"-out", dir, "-name", "SAW", "-shape", "saw",
		"-size", "128", "-rate", "48000", "-base", "3000",
		"-parallel", "2", "-plot", "-wav", "-verify",
	)
	require.NoError(t, err)

	for _, name := range []string{"SAW_full.txt", "SAW_3000.txt", "SAW_6000.txt", "SAW_12000.txt", "SAW_3000.png", "SAW.wav"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "SAW_24000.txt"))
	require.True(t, os.IsNotExist(err))

	require.Contains(t, out, "Base [Hz]")
	require.Equal(t, 3, strings.Count(out, "true"))
}

func TestRunList(t *testing.T) {
	out, _, err := runCmd(t, "-list")
	require.NoError(t, err)
	for _, s := range wavetable.Shapes() {
		require.Contains(t, out, s.String())
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCmd(t, "-out", dir, "SQR", "2048", "44100", "22050")
	require.True(t, errors.Is(err, wavetable.ErrInvalidBaseFrequency), "err = %v", err)

	_, _, err = runCmd(t, "-out", dir, "-size", "0")
	require.True(t, errors.Is(err, wavetable.ErrInvalidTableLength), "err = %v", err)

	_, _, err = runCmd(t, "-out", dir, "-shape", "noise")
	require.Error(t, err)

	_, _, err = runCmd(t, "SQR", "2048")
	require.True(t, errors.Is(err, errUsage), "err = %v", err)

	_, _, err = runCmd(t, "SQR", "big", "44100", "20")
	require.Error(t, err)

	_, _, err = runCmd(t, "-h")
	require.True(t, errors.Is(err, flag.ErrHelp), "err = %v", err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
