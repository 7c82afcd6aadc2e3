package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.Mkdir(path, 0o755))
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestDirScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"))
	mkdir(t, filepath.Join(root, "a_dir"))
	writeFile(t, filepath.Join(root, "a_dir", "nested.txt"))
	writeFile(t, filepath.Join(root, "Zeta"))
	mkdir(t, filepath.Join(root, "c"))

	listing, err := NewDirScanner().Scan(root)
	require.NoError(t, err)

	assert.Equal(t, root, listing.Path)
	assert.Equal(t, []Entry{
		{Name: "Zeta", Kind: KindFile},
		{Name: "a_dir", Kind: KindDirectory},
		{Name: "b.txt", Kind: KindFile},
		{Name: "c", Kind: KindDirectory},
	}, listing.Entries, "entries are sorted case-sensitively and not recursed into")
	assert.False(t, listing.IsEmpty())
}

func TestDirScanner_ScanEmpty(t *testing.T) {
	listing, err := NewDirScanner().Scan(t.TempDir())
	require.NoError(t, err)
	assert.True(t, listing.IsEmpty())
	assert.Empty(t, listing.Names())
}

func TestDirScanner_ScanMatchesReadDir(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"delta", "Alpha", "charlie.md", "_bravo", "10", "9"} {
		writeFile(t, filepath.Join(root, name))
	}

	listing, err := NewDirScanner().Scan(root)
	require.NoError(t, err)

	want := []string{"10", "9", "Alpha", "_bravo", "charlie.md", "delta"}
	assert.Equal(t, want, listing.Names())
}

func TestDirScanner_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	root := t.TempDir()
	target := t.TempDir()
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked_dir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	listing, err := NewDirScanner().Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "dangling", Kind: KindFile},
		{Name: "linked_dir", Kind: KindDirectory},
	}, listing.Entries)
}

func TestDirScanner_ScanErrors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file)

	removed := filepath.Join(root, "removed")
	mkdir(t, removed)
	require.NoError(t, os.Remove(removed))

	tests := []struct {
		name   string
		path   string
		reason string
	}{
		{name: "empty path", path: "", reason: "unreadable"},
		{name: "removed after selection", path: removed, reason: "not found"},
		{name: "regular file", path: file, reason: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := NewDirScanner().Scan(tt.path)
			require.Error(t, err)
			assert.Nil(t, listing)

			var scanErr *ScanError
			require.True(t, errors.As(err, &scanErr))
			assert.Equal(t, tt.path, scanErr.Path)
			if runtime.GOOS != "windows" {
				assert.Equal(t, tt.reason, scanErr.Reason())
			}
		})
	}
}

func TestDirScanner_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	locked := filepath.Join(t.TempDir(), "locked")
	mkdir(t, locked)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := NewDirScanner().Scan(locked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))

	var scanErr *ScanError
	require.True(t, errors.As(err, &scanErr))
	assert.Equal(t, "permission denied", scanErr.Reason())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "DIR", KindDirectory.String())
	assert.Equal(t, "FILE", KindFile.String())
	assert.True(t, Entry{Kind: KindDirectory}.IsDir())
}
