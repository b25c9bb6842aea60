package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string

	// ArchList is the requested compute-capability list. When ArchListSet
	// is false the value is ignored and TORCH_CUDA_ARCH_LIST is consulted
	// instead; an absent variable means zero architectures.
	ArchList    string
	ArchListSet bool

	Jobs     int
	PlanPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Jobs < 1 {
		return nil, errors.New("Jobs must be at least 1")
	}
	return &cfg, nil
}
