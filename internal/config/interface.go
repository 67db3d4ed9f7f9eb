package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and translates it into the
	// format-agnostic model. env holds the variables the file may
	// reference.
	Load(ctx context.Context, path string, env map[string]string) (*Model, error)
}
