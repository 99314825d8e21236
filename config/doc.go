// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. It supplies the server settings, encoding defaults, the
// namespace-assignment table and per-layer definitions (namespace
// prefix, geometry field name, property whitelist) used by the CLI and
// the HTTP endpoints.
package config
