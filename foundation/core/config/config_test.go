package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
)

type sample struct {
	Name  string   `toml:"name" yaml:"name"`
	Sizes []int    `toml:"sizes" yaml:"sizes"`
	Tags  []string `toml:"tags" yaml:"tags"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.conf": FormatTOML,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDecode_TOMLAndYAML(t *testing.T) {
	dir := t.TempDir()
	want := sample{Name: "matrix", Sizes: []int{3, 5, 10}, Tags: []string{"a"}}

	tomlPath := writeFile(t, dir, "c.toml", "name = \"matrix\"\nsizes = [3, 5, 10]\ntags = [\"a\"]\n")
	yamlPath := writeFile(t, dir, "c.yaml", "name: matrix\nsizes: [3, 5, 10]\ntags: [a]\n")

	for _, path := range []string{tomlPath, yamlPath} {
		var got sample
		if err := Decode(path, &got); err != nil {
			t.Fatalf("Decode(%s) error = %v", path, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decode(%s) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestDecode_UnknownKeysRejected(t *testing.T) {
	dir := t.TempDir()
	tomlPath := writeFile(t, dir, "c.toml", "nmae = \"typo\"\n")
	yamlPath := writeFile(t, dir, "c.yml", "nmae: typo\n")

	for _, path := range []string{tomlPath, yamlPath} {
		var got sample
		err := Decode(path, &got)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Decode(%s) error = %v, want INVALID_CONFIG", path, err)
		}
	}
}

func TestDecode_Missing(t *testing.T) {
	var got sample
	err := Decode(filepath.Join(t.TempDir(), "none.toml"), &got)
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
	if err := Decode("  ", &got); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("blank path error = %v, want INVALID_INPUT", err)
	}
}

func TestEncode_RoundTripsThroughDecodeBytes(t *testing.T) {
	in := sample{Name: "dates", Sizes: []int{10}}
	for _, format := range []Format{FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		if err := Encode(&buf, format, in); err != nil {
			t.Fatalf("Encode(%v) error = %v", format, err)
		}
		if !strings.Contains(buf.String(), "dates") {
			t.Errorf("Encode(%v) output %q", format, buf.String())
		}
		var out sample
		if err := DecodeBytes(buf.Bytes(), format, &out); err != nil {
			t.Fatalf("DecodeBytes(%v) error = %v", format, err)
		}
		if out.Name != in.Name {
			t.Errorf("Name = %q, want %q", out.Name, in.Name)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(DiscoveryOptions{Paths: []string{dir}}); got != "" {
		t.Errorf("Discover() = %q, want empty", got)
	}

	path := writeFile(t, dir, "config.yaml", "name: x\n")
	if got := Discover(DiscoveryOptions{Paths: []string{dir}}); got != path {
		t.Errorf("Discover() = %q, want %q", got, path)
	}
}
