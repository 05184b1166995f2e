// SPDX-License-Identifier: MPL-2.0

// Package labmod implements the module store: creating, enumerating, and
// removing the paired code/data directories that make up a datalab module,
// plus the starter file templates emitted into new modules.
//
// A module exists iff its directories exist; there is no manifest or index
// file. The store never writes outside the modules root and data root.
package labmod
