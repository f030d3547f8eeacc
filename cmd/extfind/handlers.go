package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/extfind/internal/finder"
	"github.com/taigrr/extfind/internal/pathfilter"
	"github.com/taigrr/extfind/internal/types"
	"github.com/taigrr/extfind/internal/uri"
)

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	path := strings.TrimSpace(input.Path)

	isDir, err := fileSystem.IsDirectory(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}
	if !isDir {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, fmt.Errorf("not a directory: %s", path)
	}

	fullPath, err := fileSystem.ResolvePath(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	extensions := pathfilter.ParseExtensions(input.Extensions)
	if len(extensions) == 0 {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, errors.New(finder.NoExtensionsMessage)
	}

	ignore := pathfilter.DefaultIgnore
	if input.Ignore != nil {
		ignore = *input.Ignore
	}

	maxDepth := types.Unlimited
	if input.MaxDepth != nil && *input.MaxDepth >= 0 {
		maxDepth = *input.MaxDepth
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultFindLimit
	}

	result, err := finderService.Collect(ctx, types.FindConfig{
		Root:       fullPath,
		Extensions: extensions,
		IgnoreDirs: pathfilter.ParseList(ignore),
		MaxDepth:   maxDepth,
	}, limit)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	rootPath := fileSystem.RootPath()
	files := make([]FoundFile, 0, len(result.Paths))
	for _, p := range result.Paths {
		rel, err := filepath.Rel(rootPath, p)
		if err != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)
		files = append(files, FoundFile{
			Path: rel,
			URI:  uri.GenerateFileURI(rootPath, rel),
		})
	}

	return nil, FindOutput{
		Files:     files,
		Count:     result.Count,
		Truncated: result.Count > len(files),
	}, nil
}
