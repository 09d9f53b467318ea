// Package fsscan reports on the Go runtime, selected environment variables
// and the direct contents of directories.
package fsscan

import (
	"os"
	"path/filepath"
	"runtime"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/foundation/utils/filex"
	"github.com/msto63/uvroot/foundation/utils/stringx"
)

// NotSet is reported for unset environment variables
const NotSet = "Not set"

// DefaultMaxValueLen caps displayed environment values
const DefaultMaxValueLen = 50

// DefaultEnvVars are checked when no variables are configured
var DefaultEnvVars = []string{"PATH", "HOME", "USER", "SHELL"}

// Info describes one directory
type Info struct {
	Path  string `json:"path" yaml:"path"`
	Files int    `json:"files" yaml:"files"`
	Dirs  int    `json:"dirs" yaml:"dirs"`
	Size  int64  `json:"size" yaml:"size"`
}

// Runtime describes the running binary
type Runtime struct {
	Version    string `json:"version" yaml:"version"`
	OS         string `json:"os" yaml:"os"`
	Arch       string `json:"arch" yaml:"arch"`
	Executable string `json:"executable" yaml:"executable"`
}

// Platform returns "os/arch"
func (r Runtime) Platform() string {
	return r.OS + "/" + r.Arch
}

// EnvVar is one looked-up variable. Display is Value clipped for output.
type EnvVar struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
	Set     bool   `json:"set" yaml:"set"`
}

// Totals sums several Infos
type Totals struct {
	Files int   `json:"files" yaml:"files"`
	Dirs  int   `json:"dirs" yaml:"dirs"`
	Size  int64 `json:"size" yaml:"size"`
}

// DirectoryInfo counts the files, subdirectories and file bytes directly
// under path. Entries that cannot be read are skipped.
func DirectoryInfo(path string) (Info, error) {
	stats, err := filex.ScanDir(path)
	if err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return Info{}, mdwerror.Wrap(err, "Directory not found").
				WithOperation("fsscan.DirectoryInfo").
				WithDetail("path", path)
		}
		return Info{}, err
	}
	return Info{Path: path, Files: stats.Files, Dirs: stats.Dirs, Size: stats.Size}, nil
}

// FormatSize renders a byte count as "1.50 KB"
func FormatSize(bytes int64) string {
	return filex.FormatSize(bytes)
}

// RuntimeInfo reports the Go version, platform and executable path
func RuntimeInfo() Runtime {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	return Runtime{
		Version:    runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Executable: exe,
	}
}

// Environment looks up each variable in order. Unset variables report
// NotSet. Display values longer than maxLen runes are clipped with "...".
func Environment(vars []string, maxLen int) []EnvVar {
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	out := make([]EnvVar, 0, len(vars))
	for _, name := range vars {
		value, ok := os.LookupEnv(name)
		if !ok {
			value = NotSet
		}
		out = append(out, EnvVar{
			Name:    name,
			Value:   value,
			Display: stringx.Clip(value, maxLen, "..."),
			Set:     ok,
		})
	}
	return out
}

// DefaultPaths returns the working directory and, when different, its
// parent
func DefaultPaths() ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to get working directory").
			WithCode(mdwerror.CodeInternal).
			WithOperation("fsscan.DefaultPaths")
	}
	paths := []string{cwd}
	if parent := filepath.Dir(cwd); parent != cwd {
		paths = append(paths, parent)
	}
	return paths, nil
}

// Entry is the scan outcome for one path. Info is nil when the path does
// not exist.
type Entry struct {
	Path    string `json:"path" yaml:"path"`
	Missing bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
	Info    *Info  `json:"info,omitempty" yaml:"info,omitempty"`
}

// Scan runs DirectoryInfo on each path and keeps the input order. Missing
// paths are recorded instead of failing the scan; other errors abort it.
func Scan(paths []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		info, err := DirectoryInfo(p)
		if err != nil {
			if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
				entries = append(entries, Entry{Path: p, Missing: true})
				continue
			}
			return nil, err
		}
		entries = append(entries, Entry{Path: p, Info: &info})
	}
	return entries, nil
}

// Found returns the infos of the paths that exist
func Found(entries []Entry) []Info {
	var infos []Info
	for _, e := range entries {
		if e.Info != nil {
			infos = append(infos, *e.Info)
		}
	}
	return infos
}

// Summarize totals files, directories and sizes
func Summarize(infos []Info) Totals {
	var t Totals
	for _, i := range infos {
		t.Files += i.Files
		t.Dirs += i.Dirs
		t.Size += i.Size
	}
	return t
}
