// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the first existing configuration file among candidates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-17 v0.2.0: Discovery returns a path, loading is left to Decode

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions searches ./configs and . for config.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{"./configs", "."},
		Filenames:  []string{"config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover returns the first existing regular file, or "" when none exists
func Discover(options DiscoveryOptions) string {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(os.ExpandEnv(dir), name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate
				}
			}
		}
	}
	return ""
}
