// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package error

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "ctx", wantNil: true},
		{name: "wrap standard error", err: errors.New("boom"), message: "ctx", wantMsg: "ctx: boom"},
		{name: "wrap structured error", err: New("inner"), message: "outer", wantMsg: "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWrap_PreservesCodeAndDetails(t *testing.T) {
	inner := New("missing").WithCode(CodeNotFound).WithDetail("path", "/tmp/x")
	outer := Wrapf(inner, "scan %d", 1)

	if outer.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeNotFound)
	}
	if outer.Details()["path"] != "/tmp/x" {
		t.Errorf("Details()[path] = %v", outer.Details()["path"])
	}
	if !errors.Is(outer, inner) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestWrap_StandardCauseIsReachable(t *testing.T) {
	err := Wrap(fs.ErrNotExist, "open")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false")
	}
}

func TestWithCode_SetsDefaultSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeNetworkError, SeverityMedium},
		{CodeDatabaseError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithSeverity_Overrides(t *testing.T) {
	err := New("x").WithCode(CodeNotFound).WithSeverity(SeverityHigh)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	base := New("bad date").WithCode(CodeInvalidFormat)
	chain := Wrap(base, "process")

	if !HasCode(chain, CodeInvalidFormat) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(chain, CodeNotFound) {
		t.Error("HasCode(NotFound) = true, want false")
	}
	if HasCode(errors.New("plain"), CodeInvalidFormat) {
		t.Error("HasCode(plain) = true, want false")
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want UNKNOWN", got)
	}
	if got := GetSeverity(base); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", got)
	}
}

func TestString(t *testing.T) {
	err := New("directory not found").
		WithCode(CodeNotFound).
		WithOperation("fsscan.DirectoryInfo").
		WithDetail("path", "/nope")

	s := err.String()
	for _, want := range []string{"[NOT_FOUND]", "op=fsscan.DirectoryInfo", "path=/nope"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("timeout").WithCode(CodeNetworkError).WithOperation("apiprobe.Fetch")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != "NETWORK_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "apiprobe.Fetch" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestSeverity_String(t *testing.T) {
	if SeverityCritical.String() != "critical" {
		t.Errorf("String() = %q", SeverityCritical.String())
	}
	if Severity(42).String() != "unknown" {
		t.Errorf("String() = %q", Severity(42).String())
	}
}
