// SPDX-License-Identifier: MPL-2.0

// Package project resolves the canonical locations of a datalab workspace:
// the project root and its two fixed children, the modules root (code) and
// the data root. Path methods are pure; existence checks stay with callers.
package project
