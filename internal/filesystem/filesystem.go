// Package filesystem walks directory trees and keeps lookups inside a served root.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/extfind/internal/types"
)

// Service resolves paths against a fixed root directory.
type Service struct {
	rootPath string
}

// New creates a new Service rooted at rootPath.
func New(rootPath string) *Service {
	absPath, _ := filepath.Abs(rootPath)
	return &Service{
		rootPath: absPath,
	}
}

// ResolvePath resolves a relative path within the root and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.rootPath, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within root
	relPath, err := filepath.Rel(s.rootPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// IsDirectory checks if a path within the root is a directory.
func (s *Service) IsDirectory(path string) (bool, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("directory not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return false, fmt.Errorf("permission denied: %s", path)
		}
		return false, fmt.Errorf("failed to stat: %s - %w", path, err)
	}

	return info.IsDir(), nil
}

// RootPath returns the absolute root path.
func (s *Service) RootPath() string {
	return s.rootPath
}

// Walk returns a lazy depth-first iterator over the entries below root.
//
// The root's direct children have depth 1. Directories at depth d are only
// opened when maxDepth is negative or d <= maxDepth, so maxDepth 0 lists the
// root without recursing. skipDir is consulted before a directory is yielded
// or opened; a skipped directory is neither. Symlinks are yielded but never
// followed. A root that is not a directory is yielded as a single entry.
//
// Read failures are yielded as errors and the walk continues with the next
// entry; stop by returning false from the loop body.
func Walk(root string, maxDepth int, skipDir func(path string) bool) iter.Seq2[types.Entry, error] {
	return func(yield func(types.Entry, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield(types.Entry{Path: root}, fmt.Errorf("failed to stat root: %s - %w", root, err))
			return
		}

		if !info.IsDir() {
			yield(types.Entry{Path: root, Name: info.Name(), Type: info.Mode().Type()}, nil)
			return
		}

		if skipDir != nil && skipDir(root) {
			return
		}

		walkDir(root, 0, maxDepth, skipDir, yield)
	}
}

func walkDir(dir string, depth, maxDepth int, skipDir func(string) bool, yield func(types.Entry, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !yield(types.Entry{Path: dir, Name: filepath.Base(dir), Depth: depth, Type: fs.ModeDir},
			fmt.Errorf("failed to read directory: %s - %w", dir, err)) {
			return false
		}
	}

	for _, d := range entries {
		entry := types.Entry{
			Path:  filepath.Join(dir, d.Name()),
			Name:  d.Name(),
			Depth: depth + 1,
			Type:  d.Type(),
		}

		if entry.IsDir() && skipDir != nil && skipDir(entry.Path) {
			continue
		}

		if !yield(entry, nil) {
			return false
		}

		if entry.IsDir() && (maxDepth < 0 || entry.Depth <= maxDepth) {
			if !walkDir(entry.Path, entry.Depth, maxDepth, skipDir, yield) {
				return false
			}
		}
	}

	return true
}
