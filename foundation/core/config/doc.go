// Package config decodes TOML and YAML configuration files into typed structs.
//
// Package: config
// Title: uvroot Configuration Decoding
// Description: Format detection by extension, strict decoding into caller
//              owned structs, re-encoding for display, and discovery of the
//              first existing file among candidate locations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Typed decoding replaces the map based accessor API
//
// Usage:
//
//	var cfg AppConfig
//	if err := config.Decode("configs/config.toml", &cfg); err != nil {
//		return err
//	}
package config
