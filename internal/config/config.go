// Package config loads search defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/taigrr/extfind/internal/pathfilter"
	"github.com/taigrr/extfind/internal/types"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file at path. An empty path returns an empty
// config. Unknown keys are rejected.
func Load(path string) (types.FileConfig, error) {
	if path == "" {
		return types.FileConfig{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.FileConfig{}, fmt.Errorf("config file not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.FileConfig{}, fmt.Errorf("permission denied: %s", path)
		}
		return types.FileConfig{}, fmt.Errorf("failed to read config file: %s - %w", path, err)
	}

	return Parse(content)
}

// Parse decodes a YAML config document.
func Parse(content []byte) (types.FileConfig, error) {
	var fc types.FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return types.FileConfig{}, fmt.Errorf("invalid config file: %w", err)
	}

	return fc, nil
}

// Flags holds the raw command line values and which of them were set
// explicitly.
type Flags struct {
	Extension string
	Ignore    string
	MaxDepth  int
	Verbose   bool
	Count     bool

	Changed func(name string) bool
}

// Resolve merges the file config under the command line flags and
// normalizes the result. Explicitly set flags always win.
func Resolve(root string, flags Flags, fc types.FileConfig) types.FindConfig {
	changed := flags.Changed
	if changed == nil {
		changed = func(string) bool { return true }
	}

	extension := flags.Extension
	if !changed("extension") && fc.Extensions != nil {
		extension = *fc.Extensions
	}

	ignore := flags.Ignore
	if !changed("ignore") && fc.Ignore != nil {
		ignore = *fc.Ignore
	}

	maxDepth := flags.MaxDepth
	if !changed("max-depth") && fc.MaxDepth != nil {
		maxDepth = *fc.MaxDepth
	}
	if maxDepth < 0 {
		maxDepth = types.Unlimited
	}

	verbose := flags.Verbose
	if !changed("verbose") && fc.Verbose != nil {
		verbose = *fc.Verbose
	}

	count := flags.Count
	if !changed("count") && fc.Count != nil {
		count = *fc.Count
	}

	return types.FindConfig{
		Root:       root,
		Extensions: pathfilter.ParseExtensions(extension),
		IgnoreDirs: pathfilter.ParseList(ignore),
		MaxDepth:   maxDepth,
		Verbose:    verbose,
		Count:      count,
	}
}
