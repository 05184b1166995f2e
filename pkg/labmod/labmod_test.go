// SPDX-License-Identifier: MPL-2.0

package labmod

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datalab-cli/internal/testutil"
	"datalab-cli/pkg/project"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	p, err := project.Setup(t.TempDir())
	if err != nil {
		t.Fatalf("failed to set up project: %v", err)
	}
	return NewStore(p)
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "sales", false},
		{"with digits", "q3report", false},
		{"with underscore", "daily_report", false},
		{"with hyphen", "daily-report", false},
		{"empty", "", true},
		{"leading digit", "3sales", true},
		{"path separator", "a/b", true},
		{"dot dot", "..", true},
		{"space", "a b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error %v is not ErrInvalidName", err)
			}
		})
	}
}

func TestCreateThenList(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Create(CreateOptions{Name: "demo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, d := range []string{s.Project.ModuleDir("demo"), s.Project.ModuleDataDir("demo")} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", d, err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	count := 0
	for _, n := range names {
		if n == "demo" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("List contains %q %d times, want exactly once (got %v)", "demo", count, names)
	}
}

func TestCreateAlreadyExists(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Create(CreateOptions{Name: "demo"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Mutate a starter file so we can detect clobbering.
	entry := filepath.Join(s.Project.ModuleDir("demo"), EntryFileGo)
	testutil.MustWriteFile(t, entry, []byte("edited"), 0o644)

	err := s.Create(CreateOptions{Name: "demo"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second Create error = %v, want ErrAlreadyExists", err)
	}
	if got := testutil.MustReadFile(t, entry); string(got) != "edited" {
		t.Error("failed Create modified existing module files")
	}
}

func TestCreateFailsWhenDataDirExists(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	testutil.MustMkdirAll(t, s.Project.ModuleDataDir("demo"), 0o755)

	err := s.Create(CreateOptions{Name: "demo"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Create error = %v, want ErrAlreadyExists", err)
	}
	// The code directory must not have been created on the failure path.
	if _, statErr := os.Stat(s.Project.ModuleDir("demo")); statErr == nil {
		t.Error("failed Create left a code directory behind")
	}
}

func TestListSortedAndRescans(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Create(CreateOptions{Name: name}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List = %v, want %v", names, want)
		}
	}

	// A second call observes on-disk changes.
	if err := s.Remove("mid"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	names, err = s.List()
	if err != nil {
		t.Fatalf("List after Remove failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("List after Remove = %v, want 2 entries", names)
	}
}

func TestListMissingModulesRoot(t *testing.T) {
	t.Parallel()

	p, err := project.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	names, err := NewStore(p).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List = %v, want empty", names)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Create(CreateOptions{Name: "demo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	testutil.MustWriteFile(t, filepath.Join(s.Project.ModuleDataDir("demo"), "input.csv"), []byte("a,b\n"), 0o644)

	if err := s.Remove("demo"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	for _, d := range []string{s.Project.ModuleDir("demo"), s.Project.ModuleDataDir("demo")} {
		if _, err := os.Stat(d); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("directory %s still exists after Remove", d)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, n := range names {
		if n == "demo" {
			t.Error("List still contains removed module")
		}
	}
}

func TestRemoveNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Create(CreateOptions{Name: "other"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := s.Remove("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove error = %v, want ErrNotFound", err)
	}

	// Other modules are untouched.
	if _, statErr := os.Stat(s.Project.ModuleDir("other")); statErr != nil {
		t.Errorf("unrelated module disappeared: %v", statErr)
	}
}

func TestRemoveWithOnlyDataDir(t *testing.T) {
	t.Parallel()

	// A leftover data directory alone still counts for removal.
	s := newTestStore(t)
	testutil.MustMkdirAll(t, s.Project.ModuleDataDir("orphan"), 0o755)

	if err := s.Remove("orphan"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(s.Project.ModuleDataDir("orphan")); !errors.Is(err, os.ErrNotExist) {
		t.Error("data directory still exists after Remove")
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Create(CreateOptions{Name: "demo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	testutil.MustWriteFile(t, filepath.Join(s.Project.ModuleDataDir("demo"), "a.csv"), make([]byte, 100), 0o644)
	testutil.MustWriteFile(t, filepath.Join(s.Project.ModuleDataDir("demo"), "sub", "b.csv"), make([]byte, 50), 0o644)

	info, err := s.Info("demo")
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.DataFiles != 2 {
		t.Errorf("DataFiles = %d, want 2", info.DataFiles)
	}
	if info.DataSize != 150 {
		t.Errorf("DataSize = %d, want 150", info.DataSize)
	}
}

func TestInfoNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Info("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Info error = %v, want ErrNotFound", err)
	}
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
