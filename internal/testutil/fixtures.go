// Package testutil provides shared test fixtures: a fake CUDA
// installation whose nvcc prints a genuine version banner, and manifest
// file helpers.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeCUDAHome lays out a CUDA-installation-shaped directory whose nvcc
// prints the given release in the real banner layout. Skips the test on
// Windows, where the fake compiler cannot be a shell script.
func FakeCUDAHome(t *testing.T, release string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake nvcc is a shell script")
	}

	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))

	script := fmt.Sprintf("#!/bin/sh\necho 'Cuda compilation tools, release %s, V%s.131'\n", release, release)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "nvcc"), []byte(script), 0o755))
	return home
}

// WriteManifest drops manifest content into a temp file and returns its path.
func WriteManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparge.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteSource creates a source fixture file (and any parent directories).
func WriteSource(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// kernel\n"), 0o644))
}
