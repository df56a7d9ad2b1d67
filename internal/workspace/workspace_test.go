package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareCreatesBuildsDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "aurora")
	w := New(root)

	if err := w.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	info, err := os.Stat(filepath.Join(root, "builds"))
	if err != nil || !info.IsDir() {
		t.Fatalf("builds dir missing: %v", err)
	}
}

func TestBuildDirSingleElement(t *testing.T) {
	w := New("/tmp/aurora")

	got := w.BuildDir("owner/repo")
	if got != filepath.Join("/tmp/aurora", "builds", "owner%2Frepo") {
		t.Errorf("BuildDir = %q", got)
	}
	if dir := filepath.Dir(got); dir != filepath.Join("/tmp/aurora", "builds") {
		t.Errorf("BuildDir nests below builds/: %q", got)
	}
}

func TestBuildDirDistinctPackagesDistinctDirs(t *testing.T) {
	w := New("/tmp/aurora")

	pairs := [][2]string{
		{"owner-x/repo", "owner/x-repo"},
		{"owner/repo", "owner-repo"},
		{"a/b/c", "a/b-c"},
	}
	for _, pair := range pairs {
		if a, b := w.BuildDir(pair[0]), w.BuildDir(pair[1]); a == b {
			t.Errorf("BuildDir(%q) == BuildDir(%q) == %q", pair[0], pair[1], a)
		}
	}
}

func TestResetRemovesStaleCheckout(t *testing.T) {
	w := New(t.TempDir())
	if err := w.Prepare(); err != nil {
		t.Fatal(err)
	}

	dir := w.BuildDir("pkg")
	if err := os.MkdirAll(filepath.Join(dir, "old"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "old", "artifact"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := w.Reset("pkg")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got != dir {
		t.Errorf("Reset dir = %q, want %q", got, dir)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("stale checkout still present")
	}
}

func TestLockUnlock(t *testing.T) {
	w := New(t.TempDir())

	unlock, err := w.Lock()
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	unlock()

	// Relocking after release must succeed.
	unlock, err = w.Lock()
	if err != nil {
		t.Fatalf("relock: %v", err)
	}
	unlock()
}
