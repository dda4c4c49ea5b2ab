// Package config loads calcpad's YAML configuration.
//
// A missing file yields DefaultConfig. Environment variables prefixed with
// CALCPAD_ override file values after loading.
package config
