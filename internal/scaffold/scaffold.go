// Package scaffold writes the starter files of a new repository.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Options describes the values interpolated into the templates
type Options struct {
	Repo  string
	Owner string
	Now   time.Time
}

// File is one starter file and its rendered content
type File struct {
	Name    string
	Content string
}

// Result reports which files were written and which already existed
type Result struct {
	Written []string
	Skipped []string
}

// Files returns the starter files in the order they are written.
func Files(opts Options) []File {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return []File{
		{Name: ReadmeFile, Content: Readme(opts.Repo)},
		{Name: GitignoreFile, Content: Gitignore()},
		{Name: LicenseFile, Content: License(now.Year(), opts.Owner)},
	}
}

// Write creates every starter file that does not already exist under dir.
// Existing files are never modified. It stops at the first write error.
func Write(dir string, opts Options) (Result, error) {
	var result Result
	for _, file := range Files(opts) {
		path := filepath.Join(dir, file.Name)
		written, err := WriteIfAbsent(path, file.Content)
		if err != nil {
			return result, err
		}
		if written {
			result.Written = append(result.Written, file.Name)
		} else {
			result.Skipped = append(result.Skipped, file.Name)
		}
	}
	return result, nil
}

// WriteIfAbsent writes content as UTF-8 without a byte-order mark, creating
// parent directories as needed. It returns false without touching the file
// if path already exists.
func WriteIfAbsent(path, content string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
