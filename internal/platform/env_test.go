package platform_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StarCheater/SpargeAttn/internal/platform"
)

// fakeEnv is an in-memory environment for exercising the shim without
// touching the real process state.
type fakeEnv map[string]string

func (e fakeEnv) getenv(k string) string { return e[k] }

func (e fakeEnv) setenv(k, v string) error {
	e[k] = v
	return nil
}

func TestConfigureEnv_NonWindowsIsNoop(t *testing.T) {
	env := fakeEnv{"PATH": "/usr/bin", "CUDA_PATH": "/opt/cuda"}
	require.NoError(t, platform.ConfigureEnv("linux", env.getenv, env.setenv))

	require.Equal(t, "/usr/bin", env["PATH"])
	require.NotContains(t, env, "TRITON_CACHE_DIR")
}

func TestConfigureEnv_Windows(t *testing.T) {
	env := fakeEnv{
		"LOCALAPPDATA": `C:\Users\dev\AppData\Local`,
		"CUDA_PATH":    `C:\CUDA\v12.4`,
		"PATH":         `C:\Windows`,
	}
	require.NoError(t, platform.ConfigureEnv("windows", env.getenv, env.setenv))

	require.Equal(t, filepath.Join(`C:\Users\dev\AppData\Local`, "triton_cache"), env["TRITON_CACHE_DIR"])
	require.Equal(t, `C:\Windows;`+filepath.Join(`C:\CUDA\v12.4`, "bin"), env["PATH"])
}

func TestConfigureEnv_WindowsWithoutCUDAPath(t *testing.T) {
	env := fakeEnv{"PATH": `C:\Windows`}
	require.NoError(t, platform.ConfigureEnv("windows", env.getenv, env.setenv))
	require.Equal(t, `C:\Windows`, env["PATH"], "PATH untouched when CUDA_PATH is absent")
}
