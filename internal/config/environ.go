package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environ returns the process environment as a map. When envFile is set, the
// variables it defines are read with godotenv and take precedence over the
// process values. The process environment itself is never modified.
func Environ(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = value
	}

	if envFile == "" {
		return env, nil
	}

	fileEnv, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}
	for name, value := range fileEnv {
		env[name] = value
	}
	return env, nil
}
