package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/StarCheater/SpargeAttn/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("spargebuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
spargebuild - build configurator for the SpargeAttn CUDA extensions.

Validates the CUDA toolchain, resolves architecture flags, assembles the
extension targets declared in the build manifest and emits the build plan.

Usage:
  spargebuild [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "sparge.hcl", "Path to the build manifest.")
	mFlag := flagSet.String("m", "", "Path to the build manifest (shorthand).")
	archListFlag := flagSet.String("arch-list", "", "Target compute capabilities, semicolon or space separated. Defaults to TORCH_CUDA_ARCH_LIST.")
	jobsFlag := flagSet.Int("jobs", 8, "Device-compiler parallelism forwarded to the build driver.")
	planFlag := flagSet.String("plan", "-", "Where to write the emitted build plan. '-' is stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	manifest := *manifestFlag
	if *mFlag != "" {
		manifest = *mFlag
	}

	// The empty string is a valid architecture list (zero architectures),
	// so track whether the flag was given at all before falling back to
	// the environment.
	archListSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "arch-list" {
			archListSet = true
		}
	})

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *jobsFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid jobs: must be at least 1"}
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath: manifest,
		ArchList:     *archListFlag,
		ArchListSet:  archListSet,
		Jobs:         *jobsFlag,
		PlanPath:     *planFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
