package platform

import "path/filepath"

// ConfigureEnv applies the pre-build environment adjustments the Windows
// toolchain expects: a Triton cache directory under the local app-data
// folder and the CUDA bin directory on PATH. On any other OS it does
// nothing. Environment access is injected so the shim stays testable and
// all ambient reads remain at this boundary.
func ConfigureEnv(goos string, getenv func(string) string, setenv func(string, string) error) error {
	if goos != "windows" {
		return nil
	}

	if localAppData := getenv("LOCALAPPDATA"); localAppData != "" {
		if err := setenv("TRITON_CACHE_DIR", filepath.Join(localAppData, "triton_cache")); err != nil {
			return err
		}
	}

	if cudaPath := getenv("CUDA_PATH"); cudaPath != "" {
		path := getenv("PATH") + ";" + filepath.Join(cudaPath, "bin")
		if err := setenv("PATH", path); err != nil {
			return err
		}
	}
	return nil
}
