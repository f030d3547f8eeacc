package types

import "io/fs"

// Unlimited disables the max depth bound.
const Unlimited = -1

type (
	// FindConfig holds the normalized settings for a single search.
	FindConfig struct {
		Root       string
		Extensions []string
		IgnoreDirs []string
		MaxDepth   int
		Verbose    bool
		Count      bool
	}

	// Entry is a single filesystem node produced by the walker.
	Entry struct {
		Path  string
		Name  string
		Depth int
		Type  fs.FileMode
	}

	// FindResult contains the collected matches of a search.
	FindResult struct {
		Paths []string `json:"paths"`
		Count int      `json:"count"`
	}
)

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type.IsDir()
}

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool {
	return e.Type.IsRegular()
}
