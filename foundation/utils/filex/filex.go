// File: filex.go
// Title: Core File Utilities
// Description: Existence checks, directory statistics and size formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-17 v0.2.0: ScanDir, two decimal FormatSize

package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
)

// DirStats summarizes the direct children of a directory
type DirStats struct {
	Files int   // Regular files (symlinks followed)
	Dirs  int   // Subdirectories
	Size  int64 // Sum of file sizes in bytes
	// Skipped counts entries that could not be stat'ed
	Skipped int
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir checks if the path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile checks if the path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ScanDir counts files, subdirectories and total file size one level deep.
// A directory that cannot be listed because of permissions yields empty
// stats; a missing path is a NOT_FOUND error.
func ScanDir(path string) (DirStats, error) {
	var stats DirStats

	if !Exists(path) {
		return stats, mdwerror.New(fmt.Sprintf("directory not found: %s", path)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("filex.ScanDir").
			WithDetail("path", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsPermission(err) {
			return stats, nil
		}
		return stats, mdwerror.Wrap(err, "failed to read directory").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ScanDir").
			WithDetail("path", path)
	}

	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(path, entry.Name()))
		if err != nil {
			stats.Skipped++
			continue
		}
		switch {
		case info.Mode().IsRegular():
			stats.Files++
			stats.Size += info.Size()
		case info.IsDir():
			stats.Dirs++
		}
	}
	return stats, nil
}

// ListNames returns the sorted entry names of a directory
func ListNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize formats a byte count with two decimals: 1536 -> "1.50 KB".
// Units step by 1024 from B to GB; anything larger is expressed in TB.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", size)
}
