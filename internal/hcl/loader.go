package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/rps/internal/config"
	"github.com/vk/rps/internal/ctxlog"
	"github.com/vk/rps/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level structure of a settings file.
type fileRoot struct {
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Color     *bool   `hcl:"color,optional"`
}

// Load reads the HCL settings at path. A directory is searched recursively
// for .hcl files which are applied in lexical order, later files overriding
// earlier ones. Expressions can read variables through the `env` object,
// e.g. `log_level = env.RPS_LOG_LEVEL`.
func (l *Loader) Load(ctx context.Context, path string, env map[string]string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path, "env_count", len(env))

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	if len(files) == 0 {
		logger.Warn("No .hcl settings files found in path, using defaults.", "path", path)
		return model, nil
	}

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(env)
	for _, file := range files {
		settings, err := l.loadFile(parser, file, evalCtx)
		if err != nil {
			return nil, err
		}
		model.Settings = mergeSettings(model.Settings, settings)
	}

	logger.Debug("HCL settings translated.", "settings", model.Settings)
	return model, nil
}

// loadFile parses and decodes a single settings file.
func (l *Loader) loadFile(parser *hclparse.Parser, file string, evalCtx *hcl.EvalContext) (config.Settings, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}
	return translateSettings(&root), nil
}

// newEvalContext exposes env as an object so that attribute traversal
// (env.NAME) works in expressions.
func newEvalContext(env map[string]string) *hcl.EvalContext {
	envVal := cty.EmptyObjectVal
	if len(env) > 0 {
		attrs := make(map[string]cty.Value, len(env))
		for name, value := range env {
			attrs[name] = cty.StringVal(value)
		}
		envVal = cty.ObjectVal(attrs)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}

// translateSettings converts the decoded file into the agnostic model.
func translateSettings(root *fileRoot) config.Settings {
	var s config.Settings
	if root.LogLevel != nil {
		s.LogLevel = *root.LogLevel
	}
	if root.LogFormat != nil {
		s.LogFormat = *root.LogFormat
	}
	s.Color = root.Color
	return s
}

// mergeSettings overlays the values set in top onto base.
func mergeSettings(base, top config.Settings) config.Settings {
	if top.LogLevel != "" {
		base.LogLevel = top.LogLevel
	}
	if top.LogFormat != "" {
		base.LogFormat = top.LogFormat
	}
	if top.Color != nil {
		base.Color = top.Color
	}
	return base
}
