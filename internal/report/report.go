// ============================================================================
// uvroot - Analysis Toolkit
// ============================================================================
//
// Package:     report
// Description: Result envelope and text/JSON/YAML rendering for all commands
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/pkg/core/version"
)

// Format selects how an envelope is written
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// String returns the flag value for the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses text, json, yaml or yml (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, mdwerror.Newf("unknown output format %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("report.ParseFormat")
	}
}

// Envelope wraps one command result with its run metadata
type Envelope struct {
	RunID     string      `json:"run_id" yaml:"run_id"`
	Command   string      `json:"command" yaml:"command"`
	Schema    string      `json:"schema" yaml:"schema"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Data      interface{} `json:"data" yaml:"data"`
}

// NewEnvelope stamps data with a fresh run id and the current UTC time
func NewEnvelope(command string, data interface{}) Envelope {
	return Envelope{
		RunID:     uuid.NewString(),
		Command:   command,
		Schema:    version.ReportSchema,
		CreatedAt: time.Now().UTC(),
		Data:      data,
	}
}

// Texter is implemented by results that know their console layout
type Texter interface {
	WriteText(p *Printer)
}

// Renderer writes envelopes in one format. Successive YAML documents are
// separated by "---" so the output stays a valid stream; JSON documents
// follow each other and can be read with a json.Decoder.
type Renderer struct {
	w       io.Writer
	format  Format
	written int
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Format returns the configured format
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes the envelope. Text output only prints the data; JSON and
// YAML include the run metadata.
func (r *Renderer) Render(env Envelope) error {
	if err := r.render(env); err != nil {
		return err
	}
	r.written++
	return nil
}

func (r *Renderer) render(env Envelope) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(env); err != nil {
			return wrapRenderErr(err, r.format)
		}
		return nil
	case FormatYAML:
		if r.written > 0 {
			if _, err := io.WriteString(r.w, "---\n"); err != nil {
				return wrapRenderErr(err, r.format)
			}
		}
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return wrapRenderErr(err, r.format)
		}
		return wrapRenderErr(enc.Close(), r.format)
	default:
		p := NewPrinter(r.w)
		if t, ok := env.Data.(Texter); ok {
			t.WriteText(p)
		} else {
			p.Line("%+v", env.Data)
		}
		return wrapRenderErr(p.Err(), r.format)
	}
}

func wrapRenderErr(err error, format Format) error {
	if err == nil {
		return nil
	}
	return mdwerror.Wrap(err, fmt.Sprintf("failed to render %s report", format)).
		WithCode(mdwerror.CodeInternal).
		WithOperation("report.Render")
}
