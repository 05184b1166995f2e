// SPDX-License-Identifier: MPL-2.0

package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"

	"datalab-cli/pkg/project"
)

// Scope selects which half of a module's tree goes into the archive.
type Scope string

const (
	// ScopeBoth archives code and data directories.
	ScopeBoth Scope = "both"
	// ScopeCode archives only the modules root (code).
	ScopeCode Scope = "code"
	// ScopeData archives only the data root.
	ScopeData Scope = "data"
)

var (
	// ErrSourceNotFound is returned when a named module has no code or data
	// directory to archive.
	ErrSourceNotFound = errors.New("backup source not found")
	// ErrTargetUnwritable is returned when the target directory cannot be
	// created or the archive file cannot be written there.
	ErrTargetUnwritable = errors.New("backup target not writable")
	// ErrArchiveExists is returned when two backups collide on the same
	// timestamped name within one second. Re-running resolves it.
	ErrArchiveExists = errors.New("archive already exists")
)

// timestampLayout is sortable: lexicographic order is chronological order.
const timestampLayout = "20060102_150405"

// Options controls a single backup run.
type Options struct {
	// Module restricts the archive to one module. Empty means all modules.
	Module string
	// Scope selects code, data, or both. Zero value means both.
	Scope Scope
	// TargetDir is where the archive file is written. Created if missing.
	TargetDir string
	// Exclude holds glob patterns matched against each file's
	// archive-relative path (slash-separated); matches are skipped.
	Exclude []string
}

// Result describes a completed backup.
type Result struct {
	// ArchivePath is the absolute path of the written archive.
	ArchivePath string
	// Files is the number of regular files archived.
	Files int
	// SourceSize is the total uncompressed size of those files in bytes.
	SourceSize int64
	// ArchiveSize is the size of the archive file in bytes.
	ArchiveSize int64
}

// Create walks the selected source directories of p and writes a single
// timestamped ZIP archive into opts.TargetDir. An empty selection (for
// instance an empty project) still yields a valid archive with no entries.
func Create(p project.Project, opts Options) (res Result, err error) {
	scope := opts.Scope
	if scope == "" {
		scope = ScopeBoth
	}

	roots, err := resolveRoots(p, opts.Module, scope)
	if err != nil {
		return Result{}, err
	}

	matchers, err := compileExcludes(opts.Exclude)
	if err != nil {
		return Result{}, err
	}

	targetDir, err := prepareTarget(opts.TargetDir)
	if err != nil {
		return Result{}, err
	}

	archivePath := filepath.Join(targetDir, archiveName(opts.Module, scope, time.Now()))

	// O_EXCL turns a same-second name collision into an error instead of a
	// silent overwrite.
	zipFile, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrArchiveExists, archivePath)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}
	defer func() {
		if closeErr := zipFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			// Drop the partial archive after the file handle is closed.
			_ = os.Remove(archivePath)
		}
	}()

	zw := zip.NewWriter(zipFile)

	for _, root := range roots {
		if err = addTree(zw, p.Root, root, matchers, &res); err != nil {
			_ = zw.Close()
			return Result{}, fmt.Errorf("failed to archive %s: %w", root, err)
		}
	}

	if err = zw.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to finalize archive: %w", err)
	}

	res.ArchivePath = archivePath
	if fi, statErr := os.Stat(archivePath); statErr == nil {
		res.ArchiveSize = fi.Size()
	}
	return res, nil
}

// archiveName embeds the module filter, scope, and a sortable timestamp,
// matching the layout "<module>_backup[_code|_data]_YYYYMMDD_HHMMSS.zip".
func archiveName(module string, scope Scope, now time.Time) string {
	prefix := "all_modules"
	if module != "" {
		prefix = module
	}
	suffix := ""
	switch scope {
	case ScopeCode:
		suffix = "_code"
	case ScopeData:
		suffix = "_data"
	}
	return fmt.Sprintf("%s_backup%s_%s.zip", prefix, suffix, now.Format(timestampLayout))
}

// resolveRoots picks the directories to walk. A named module must have at
// least one of its directories on disk; whole-project roots may be absent
// (an empty project archives as zero entries).
func resolveRoots(p project.Project, module string, scope Scope) ([]string, error) {
	var candidates []string
	if scope == ScopeBoth || scope == ScopeCode {
		if module != "" {
			candidates = append(candidates, p.ModuleDir(module))
		} else {
			candidates = append(candidates, p.ModulesDir())
		}
	}
	if scope == ScopeBoth || scope == ScopeData {
		if module != "" {
			candidates = append(candidates, p.ModuleDataDir(module))
		} else {
			candidates = append(candidates, p.DataDir())
		}
	}

	var roots []string
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			roots = append(roots, c)
		}
	}
	if module != "" && len(roots) == 0 {
		return nil, fmt.Errorf("%w: module %q", ErrSourceNotFound, module)
	}
	return roots, nil
}

// prepareTarget ensures the target directory exists and is a directory.
func prepareTarget(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("%w: no target directory given", ErrTargetUnwritable)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrTargetUnwritable, abs)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}
	return abs, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pat, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

func excluded(matchers []glob.Glob, relPath string) bool {
	for _, g := range matchers {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// addTree writes every regular file under root into zw, named by its
// slash-separated path relative to projectRoot.
func addTree(zw *zip.Writer, projectRoot, root string, matchers []glob.Glob, res *Result) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relPath, err := filepath.Rel(projectRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		zipPath := filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != root && excluded(matchers, zipPath+"/") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || excluded(matchers, zipPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to create file header: %w", err)
		}
		header.Name = zipPath
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create archive entry: %w", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write archive entry: %w", err)
		}

		res.Files++
		res.SourceSize += info.Size()
		return nil
	})
}
