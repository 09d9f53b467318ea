// Package error provides structured errors for the uvroot toolkit.
//
// Package: error
// Title: uvroot Error Handling
// Description: Errors carry a stable code, a severity, the failing operation
//              and free-form details. They wrap causes so the standard
//              errors.Is / errors.As helpers keep working across layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Trimmed to the codes used by the analysis commands,
//                      dropped stack capture and localisation keys
//
// Usage:
//
//	err := mdwerror.New("directory not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithOperation("fsscan.DirectoryInfo").
//		WithDetail("path", path)
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// skip the path
//	}
package error
