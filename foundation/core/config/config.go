// File: config.go
// Title: Configuration Decoding
// Description: Decodes TOML and YAML files into typed structs and encodes
//              them back for display.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Typed Decode/Encode

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension; unknown
// extensions are treated as TOML
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode reads filePath and decodes it into v. Environment variables in
// the path are expanded.
func Decode(filePath string, v interface{}) error {
	filePath = os.ExpandEnv(filePath)
	if strings.TrimSpace(filePath) == "" {
		return mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Decode")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Decode").
			WithDetail("filePath", filePath)
	}

	if err := DecodeBytes(content, DetectFormat(filePath), v); err != nil {
		return mdwerror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath)
	}
	return nil
}

// DecodeBytes decodes content in the given format into v. Unknown keys are
// rejected so typos in config files surface.
func DecodeBytes(content []byte, format Format, v interface{}) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.DecodeBytes")
		}
	case FormatTOML, FormatAuto:
		md, err := toml.Decode(string(content), v)
		if err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.DecodeBytes")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return mdwerror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.DecodeBytes")
		}
	default:
		return mdwerror.Newf("unsupported config format %d", int(format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.DecodeBytes")
	}
	return nil
}

// Encode writes v to w in the given format
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	}
}
