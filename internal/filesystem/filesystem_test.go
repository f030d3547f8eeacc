package filesystem

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func setupTestTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		if strings.HasSuffix(f, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("Failed to create dir: %v", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
	return root
}

// collect returns the slash-separated paths relative to root, in walk order.
func collect(t *testing.T, root string, maxDepth int, skipDir func(string) bool) []string {
	t.Helper()
	var got []string
	for entry, err := range Walk(root, maxDepth, skipDir) {
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}
		rel, err := filepath.Rel(root, entry.Path)
		if err != nil {
			t.Fatalf("Rel() error = %v", err)
		}
		got = append(got, filepath.ToSlash(rel))
	}
	return got
}

func TestWalk_DepthFirstOrder(t *testing.T) {
	root := setupTestTree(t, "b.txt", "a/z.txt", "a/c/d.txt", "c.txt")

	got := collect(t, root, -1, nil)
	want := []string{"a", "a/c", "a/c/d.txt", "a/z.txt", "b.txt", "c.txt"}

	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %q, want %q", got, want)
	}
}

func TestWalk_MaxDepth(t *testing.T) {
	root := setupTestTree(t, "top.txt", "one/mid.txt", "one/two/deep.txt")

	tests := []struct {
		maxDepth int
		want     []string
	}{
		{0, []string{"one", "top.txt"}},
		{1, []string{"one", "one/mid.txt", "one/two", "top.txt"}},
		{2, []string{"one", "one/mid.txt", "one/two", "one/two/deep.txt", "top.txt"}},
		{-1, []string{"one", "one/mid.txt", "one/two", "one/two/deep.txt", "top.txt"}},
	}

	for _, tt := range tests {
		got := collect(t, root, tt.maxDepth, nil)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Walk(maxDepth=%d) = %q, want %q", tt.maxDepth, got, tt.want)
		}
	}
}

func TestWalk_SkipDirPrunes(t *testing.T) {
	root := setupTestTree(t, "a.txt", "sub/b.txt", "sub/.git/c.txt", "sub/.git/objects/d")

	var asked []string
	skip := func(path string) bool {
		rel, _ := filepath.Rel(root, path)
		asked = append(asked, filepath.ToSlash(rel))
		return filepath.Base(path) == ".git"
	}

	got := collect(t, root, -1, skip)
	want := []string{"a.txt", "sub", "sub/b.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %q, want %q", got, want)
	}

	for _, p := range asked {
		if strings.HasPrefix(p, "sub/.git/") {
			t.Errorf("skipDir consulted inside pruned subtree: %q", p)
		}
	}
}

func TestWalk_SkippedRoot(t *testing.T) {
	root := setupTestTree(t, "a.txt")

	got := collect(t, root, -1, func(string) bool { return true })
	if len(got) != 0 {
		t.Errorf("Walk() = %q, want empty", got)
	}
}

func TestWalk_FileRoot(t *testing.T) {
	root := setupTestTree(t, "only.txt")
	file := filepath.Join(root, "only.txt")

	var entries int
	for entry, err := range Walk(file, -1, nil) {
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}
		entries++
		if entry.Path != file || !entry.IsRegular() {
			t.Errorf("Walk() entry = %+v, want regular file %q", entry, file)
		}
	}
	if entries != 1 {
		t.Errorf("Walk() yielded %d entries, want 1", entries)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	var errs, entries int
	for _, err := range Walk(root, -1, nil) {
		if err != nil {
			errs++
			continue
		}
		entries++
	}
	if errs != 1 || entries != 0 {
		t.Errorf("Walk(missing) = %d entries, %d errors, want 0, 1", entries, errs)
	}
}

func TestWalk_SymlinksNotFollowed(t *testing.T) {
	root := setupTestTree(t, "real/a.txt")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := collect(t, root, -1, nil)
	want := []string{"link", "real", "real/a.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %q, want %q", got, want)
	}
}

func TestWalk_UnreadableDirectoryContinues(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := setupTestTree(t, "a/secret.txt", "b/open.txt")
	locked := filepath.Join(root, "a")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	var got []string
	var errs int
	for entry, err := range Walk(root, -1, nil) {
		if err != nil {
			errs++
			continue
		}
		rel, _ := filepath.Rel(root, entry.Path)
		got = append(got, filepath.ToSlash(rel))
	}

	want := []string{"a", "b", "b/open.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %q, want %q", got, want)
	}
	if errs != 1 {
		t.Errorf("Walk() errors = %d, want 1", errs)
	}
}

func TestWalk_StopEarly(t *testing.T) {
	root := setupTestTree(t, "a.txt", "b.txt", "c/d.txt")

	seen := 0
	for range Walk(root, -1, nil) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("seen = %d, want 2", seen)
	}
}

func TestService_ResolvePath(t *testing.T) {
	root := t.TempDir()
	svc := New(root)

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"", root, false},
		{".", root, false},
		{"sub/dir", filepath.Join(root, "sub", "dir"), false},
		{"/sub", filepath.Join(root, "sub"), false},
		{"  sub  ", filepath.Join(root, "sub"), false},
		{"..", "", true},
		{"../etc/passwd", "", true},
		{"sub/../../x", "", true},
		{"..foo", filepath.Join(root, "..foo"), false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := svc.ResolvePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolvePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestService_IsDirectory(t *testing.T) {
	root := setupTestTree(t, "dir/", "file.txt")
	svc := New(root)

	if ok, err := svc.IsDirectory("dir"); err != nil || !ok {
		t.Errorf("IsDirectory(\"dir\") = %v, %v, want true, nil", ok, err)
	}
	if ok, err := svc.IsDirectory("file.txt"); err != nil || ok {
		t.Errorf("IsDirectory(\"file.txt\") = %v, %v, want false, nil", ok, err)
	}
	if _, err := svc.IsDirectory("missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("IsDirectory(\"missing\") error = %v, want not found", err)
	}
	if _, err := svc.IsDirectory("../x"); err == nil {
		t.Error("IsDirectory(\"../x\") error = nil, want traversal error")
	}
}
