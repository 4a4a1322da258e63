package staging

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestFindStaged(t *testing.T) {
	t.Run("finds staged files recursively", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "V1_a.md"), "a")
		writeFile(t, filepath.Join(root, "notes.md"), "n")
		writeFile(t, filepath.Join(root, "sub", "V10_c.txt"), "c")
		writeFile(t, filepath.Join(root, "sub", "deep", "V2_d.md"), "d")
		// A directory whose name matches the convention must not be listed.
		writeFile(t, filepath.Join(root, "V9_dir", "inner.md"), "i")

		found, err := FindStaged(root)
		if err != nil {
			t.Fatalf("FindStaged() error = %v", err)
		}

		var got []string
		for _, sf := range found {
			got = append(got, sf.Path)
		}
		sort.Strings(got)

		want := []string{
			filepath.Join(root, "V1_a.md"),
			filepath.Join(root, "sub", "V10_c.txt"),
			filepath.Join(root, "sub", "deep", "V2_d.md"),
		}
		if len(got) != len(want) {
			t.Fatalf("FindStaged() returned %d files, want %d: %v", len(got), len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("found[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("empty tree yields no results", func(t *testing.T) {
		found, err := FindStaged(t.TempDir())
		if err != nil {
			t.Fatalf("FindStaged() error = %v", err)
		}
		if len(found) != 0 {
			t.Errorf("FindStaged() returned %d files, want 0", len(found))
		}
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := FindStaged(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Fatal("expected error for missing root")
		}
	})

	t.Run("results carry canonical paths", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "docs", "V2_guide.md"), "g")

		found, err := FindStaged(root)
		if err != nil {
			t.Fatalf("FindStaged() error = %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("FindStaged() returned %d files, want 1", len(found))
		}
		if got, want := found[0].CanonicalPath(), filepath.Join(root, "docs", "guide.md"); got != want {
			t.Errorf("CanonicalPath() = %q, want %q", got, want)
		}
	})
}
