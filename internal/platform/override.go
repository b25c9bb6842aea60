// Package platform applies host-OS-conditional adjustments to assembled
// targets: extra device-compiler flags and alternate optional-dependency
// extras on Windows, and the pre-build environment shim the Windows
// toolchain needs.
package platform

import (
	"github.com/StarCheater/SpargeAttn/internal/config"
)

// windowsNvccFlags selects the dynamic MSVC runtime and suppresses the
// code-page warning the CUDA headers trip on localized hosts.
var windowsNvccFlags = []string{"-Xcompiler=/MD", "-Xcompiler=/wd4819"}

// Apply mutates every target for the given host OS and returns the
// optional-dependency extras selected for it. On "windows" the extra
// device-compiler flags are appended to each target and each extras set's
// Windows alternate is chosen when declared; on any other OS targets are
// untouched and the default extras are returned.
//
// Apply is not idempotent: invoking it twice appends the Windows flags
// twice. Callers must apply it exactly once per build invocation, after
// assembly and before emission.
func Apply(targets []*config.Target, extras map[string]*config.Extras, goos string) map[string][]string {
	selected := make(map[string][]string, len(extras))

	if goos != "windows" {
		for name, e := range extras {
			selected[name] = e.Default
		}
		return selected
	}

	for _, target := range targets {
		target.NvccFlags = append(target.NvccFlags, windowsNvccFlags...)
	}
	for name, e := range extras {
		if len(e.Windows) > 0 {
			selected[name] = e.Windows
		} else {
			selected[name] = e.Default
		}
	}
	return selected
}
