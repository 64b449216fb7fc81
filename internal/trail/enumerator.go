package trail

import (
	"io/fs"
	"os"
	"path/filepath"
)

// osEnumerator lists directories on the local filesystem.
type osEnumerator struct{}

// NewEnumerator creates an Enumerator backed by the operating system.
func NewEnumerator() Enumerator {
	return osEnumerator{}
}

// ReadDir lists path. Entries are returned in the order the OS reports them.
func (osEnumerator) ReadDir(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, &DirectoryReadError{Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(path, de.Name()),
			Kind: kindOf(de.Type()),
		})
	}

	return entries, nil
}

func kindOf(mode fs.FileMode) ItemKind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
