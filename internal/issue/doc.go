// SPDX-License-Identifier: EPL-2.0

// Package issue provides user-facing error types: errors that carry the
// operation attempted, the resource involved, and suggestions for fixing
// the problem, so the CLI can print something actionable instead of a bare
// error chain.
package issue
