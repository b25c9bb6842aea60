package platform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StarCheater/SpargeAttn/internal/config"
	"github.com/StarCheater/SpargeAttn/internal/platform"
)

func twoTargets() []*config.Target {
	return []*config.Target{
		{Name: "_qattn", NvccFlags: []string{"-O3"}},
		{Name: "_fused", NvccFlags: []string{"-O3"}},
	}
}

func tritonExtras() map[string]*config.Extras {
	return map[string]*config.Extras{
		"triton": {
			Name:    "triton",
			Default: []string{"triton>=3.2.0"},
			Windows: []string{"triton-windows>=3.3.1"},
		},
	}
}

func TestApply_Linux(t *testing.T) {
	targets := twoTargets()
	extras := platform.Apply(targets, tritonExtras(), "linux")

	for _, target := range targets {
		require.Equal(t, []string{"-O3"}, target.NvccFlags, "non-windows hosts leave targets untouched")
	}
	require.Equal(t, []string{"triton>=3.2.0"}, extras["triton"])
}

func TestApply_Windows(t *testing.T) {
	targets := twoTargets()
	extras := platform.Apply(targets, tritonExtras(), "windows")

	for _, target := range targets {
		require.Equal(t, []string{"-O3", "-Xcompiler=/MD", "-Xcompiler=/wd4819"}, target.NvccFlags)
	}
	require.Equal(t, []string{"triton-windows>=3.3.1"}, extras["triton"])
}

func TestApply_WindowsExtrasFallBackToDefault(t *testing.T) {
	extras := map[string]*config.Extras{
		"dev": {Name: "dev", Default: []string{"pytest"}},
	}
	selected := platform.Apply(nil, extras, "windows")
	require.Equal(t, []string{"pytest"}, selected["dev"])
}

func TestApply_DoubleApplicationDuplicatesFlags(t *testing.T) {
	// The layer is deliberately not idempotent; single application is the
	// caller's discipline. A second call must visibly duplicate flags.
	targets := twoTargets()
	platform.Apply(targets, nil, "windows")
	platform.Apply(targets, nil, "windows")

	require.Equal(t, []string{
		"-O3",
		"-Xcompiler=/MD", "-Xcompiler=/wd4819",
		"-Xcompiler=/MD", "-Xcompiler=/wd4819",
	}, targets[0].NvccFlags)
}
