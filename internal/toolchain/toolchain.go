// Package toolchain validates the host CUDA installation: it locates the
// installation root, confirms the nvcc executable exists, queries its
// version and enforces the minimum supported release. Every failure is a
// fatal configuration error carrying the offending path or version.
package toolchain

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/ctxlog"
)

// DefaultMinVersion is the oldest CUDA release the build accepts when the
// manifest does not override it.
var DefaultMinVersion = Version{Major: 12, Minor: 0}

// versionQueryTimeout bounds the `nvcc --version` subprocess so an
// unresponsive toolchain fails the build instead of hanging it.
const versionQueryTimeout = 30 * time.Second

// Locate resolves the CUDA installation root the way the upstream build
// does: CUDA_HOME first, then CUDA_PATH, then /usr/local/cuda if it
// exists. It is the only place the toolchain root is read from the
// environment; getenv is injected so callers stay testable. Returns ""
// when no installation can be found.
func Locate(getenv func(string) string) string {
	if home := getenv("CUDA_HOME"); home != "" {
		return home
	}
	if home := getenv("CUDA_PATH"); home != "" {
		return home
	}
	const fallback = "/usr/local/cuda"
	if info, err := os.Stat(fallback); err == nil && info.IsDir() {
		return fallback
	}
	return ""
}

// NvccPath returns the expected compiler location inside a CUDA
// installation root.
func NvccPath(home string) string {
	name := "nvcc"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(home, "bin", name)
}

// Validate confirms that home points at a usable CUDA installation of at
// least the given minimum release. A version exactly equal to min passes.
func Validate(ctx context.Context, home string, min Version) error {
	logger := ctxlog.FromContext(ctx)

	if home == "" {
		return config.Configf("CUDA installation not found; CUDA %s+ required", min)
	}

	nvcc := NvccPath(home)
	if _, err := os.Stat(nvcc); err != nil {
		return config.Configf("nvcc not found at %s", nvcc)
	}

	detected, err := queryVersion(ctx, nvcc)
	if err != nil {
		return err
	}
	logger.Debug("Detected CUDA toolchain.", "nvcc", nvcc, "version", detected.String())

	if detected.Less(min) {
		return config.Configf("requires CUDA %s+, found %s", min, detected)
	}
	return nil
}

// queryVersion runs `nvcc --version` under a timeout and parses the
// release from its banner.
func queryVersion(ctx context.Context, nvcc string) (Version, error) {
	ctx, cancel := context.WithTimeout(ctx, versionQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, nvcc, "--version").Output()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Version{}, config.Configf("toolchain unresponsive: %s --version did not finish within %s", nvcc, versionQueryTimeout)
	}
	if err != nil {
		return Version{}, config.ConfigWrap(err, "failed to query nvcc version at %s", nvcc)
	}

	v, err := parseBanner(string(out))
	if err != nil {
		return Version{}, config.ConfigWrap(err, "failed to parse nvcc version at %s", nvcc)
	}
	return v, nil
}
