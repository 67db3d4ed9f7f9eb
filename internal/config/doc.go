// Package config defines the format-agnostic configuration model for the
// game, along with the Loader interface for reading it from a file.
//
// The `config.Model` only carries ambient settings (logging and display).
// The rules of the game are fixed and never come from configuration.
// Concrete loaders, such as for HCL, are provided in separate packages.
package config
