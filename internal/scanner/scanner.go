package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"
)

// Kind tells a directory apart from everything else.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "DIR"
	}
	return "FILE"
}

// Entry is one immediate child of a scanned directory.
type Entry struct {
	Name string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Listing contains the results of a single directory scan.
type Listing struct {
	Path    string
	Entries []Entry
}

// Names returns the entry names in listing order.
func (l *Listing) Names() []string {
	names := make([]string, len(l.Entries))
	for i, entry := range l.Entries {
		names[i] = entry.Name
	}
	return names
}

// IsEmpty reports whether the directory had no children.
func (l *Listing) IsEmpty() bool {
	return len(l.Entries) == 0
}

// ScanError is returned when a directory could not be enumerated.
// No partial listing accompanies it.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to read directory %q: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Reason gives a short diagnostic category for logs.
func (e *ScanError) Reason() string {
	switch {
	case errors.Is(e.Err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(e.Err, fs.ErrNotExist):
		return "not found"
	case errors.Is(e.Err, syscall.ENOTDIR):
		return "not a directory"
	default:
		return "unreadable"
	}
}

// Scanner lists the immediate children of a directory.
type Scanner interface {
	Scan(path string) (*Listing, error)
}

// DirScanner implements Scanner on the local filesystem.
type DirScanner struct{}

// NewDirScanner creates a new DirScanner.
func NewDirScanner() *DirScanner {
	return &DirScanner{}
}

// Scan reads one level of path, sorts the child names byte-wise and tags each child
// by stat'ing it. Any read failure fails the whole scan.
func (s *DirScanner) Scan(path string) (*Listing, error) {
	if path == "" {
		return nil, &ScanError{Path: path, Err: fmt.Errorf("path cannot be empty")}
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	names := make([]string, len(dirEntries))
	for i, entry := range dirEntries {
		names[i] = entry.Name()
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name: name,
			Kind: kindOf(filepath.Join(path, name)),
		})
	}

	return &Listing{
		Path:    path,
		Entries: entries,
	}, nil
}

// kindOf follows symlinks; anything that cannot be stat'ed counts as a file.
func kindOf(path string) Kind {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return KindDirectory
	}
	return KindFile
}
