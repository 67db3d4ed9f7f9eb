// Package hcl provides the concrete HCL implementation of the configuration
// Loader defined in the `config` package. It is responsible for file
// parsing, exposing environment variables to expressions, and translating
// the decoded file into the format-agnostic model.
package hcl
