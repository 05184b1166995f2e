// SPDX-License-Identifier: MPL-2.0

// Package runner discovers and invokes a module's entry point. Each
// invocation loads the module's code into a fresh interpreter, so no state
// leaks between runs, and any failure raised by module code is caught at
// this boundary instead of crashing the CLI.
//
// Two entry point kinds are supported: run.go (interpreted Go, via yaegi)
// and run.sh (interpreted shell, via mvdan/sh).
package runner
