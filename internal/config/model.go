package config

// Model is the unified, format-agnostic representation of a configuration
// file.
type Model struct {
	Settings Settings
}

// Settings are the ambient knobs a file may set. Zero values mean "not set"
// so that callers can layer them over their own defaults.
type Settings struct {
	LogLevel  string
	LogFormat string
	Color     *bool
}
