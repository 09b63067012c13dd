// Package config handles application configuration loading and validation.
//
// Configuration is loaded either from commute.yml (one-shot CLI runs) or
// from environment variables (scheduled platform runs); both paths populate
// the same AppConfig and are validated using struct tags.
package config
