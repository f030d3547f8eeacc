package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

// defaultFindLimit caps the number of paths returned by a single find call.
const defaultFindLimit = 200

type (
	// FindInput contains parameters for finding files.
	FindInput struct {
		Path       string  `json:"path,omitempty" jsonschema:"Directory to search, relative to the served root (default: root)"`
		Extensions string  `json:"extensions" jsonschema:"Comma-separated file extensions without dots, e.g. go,md"`
		Ignore     *string `json:"ignore,omitempty" jsonschema:"Comma-separated directory names to skip (default: .git,node_modules,$RECYCLE.BIN,.Trash,.DS_Store)"`
		MaxDepth   *int    `json:"maxDepth,omitempty" jsonschema:"Maximum recursion depth below path; 0 searches only the top level of path (default: unlimited)"`
		Limit      int     `json:"limit,omitempty" jsonschema:"Maximum number of files to return (default: 200)"`
	}

	// FoundFile is a single matching file.
	FoundFile struct {
		Path string `json:"path"`
		URI  string `json:"uri"`
	}

	// FindOutput contains the result of a find call.
	FindOutput struct {
		Files     []FoundFile `json:"files"`
		Count     int         `json:"count"`
		Truncated bool        `json:"truncated,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Recursively find files by extension below the served root. Directories on the ignore list are skipped wherever they appear in the path (case-insensitive). Extensions match case-sensitively. Returns paths relative to the root with file URIs.",
	}, handleFind)
}
