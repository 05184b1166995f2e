// SPDX-License-Identifier: MPL-2.0

// Package backup writes snapshot ZIP archives of a datalab project's module
// directories. Archives preserve paths relative to the project root, so
// extraction reconstructs the modules/ and data/ layout in place.
//
// Archiving is best-effort, not transactional: a failure mid-walk removes
// the partial archive, but concurrent writers to the source tree can still
// produce an archive that mixes old and new file contents.
package backup
