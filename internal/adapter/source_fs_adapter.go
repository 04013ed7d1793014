// Package adapter contains filesystem and output adapters for the allure-analysis CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// SourceFSAdapter abstracts the read-only filesystem operations the domain
// layer needs to inspect an Allure directory. It hides direct `os` access so
// detection and parsing can be tested against fixtures or fakes.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ListFiles returns the regular files directly inside dir whose names end
	// with suffix, sorted by name. Sub-directories are never descended.
	ListFiles(dir m.Path, suffix string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the domain.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListFiles lists regular files in dir ending with suffix, sorted by name.
func (a *LocalSourceFSAdapter) ListFiles(dir m.Path, suffix string) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}

		files = append(files, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i] < files[j]
	})

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-supplied Allure artifacts is the point of this tool
	return os.ReadFile(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
