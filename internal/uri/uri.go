// Package uri provides file URI generation.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// GenerateFileURI generates a file URI for a path relative to rootPath.
// Uses the absolute path format: file:///absolute/path/to/file
func GenerateFileURI(rootPath, relativePath string) string {
	absolutePath := filepath.ToSlash(filepath.Join(rootPath, relativePath))

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Remove leading slash since we add the file:/// prefix
	encodedPath = strings.TrimPrefix(encodedPath, "/")

	return "file:///" + encodedPath
}
