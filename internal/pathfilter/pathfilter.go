// Package pathfilter decides which directories are pruned and which files
// match during a search.
package pathfilter

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/extfind/internal/types"
)

// DefaultIgnore is the ignore list used when none is given.
const DefaultIgnore = ".git,node_modules,$RECYCLE.BIN,.Trash,.DS_Store"

// recycleBin is skipped anywhere in a path, regardless of the ignore list.
const recycleBin = "$recycle.bin"

// PathFilter matches file extensions and ignored directory names.
//
// Ignored names are compared case-insensitively against every component of a
// directory path. Extensions are compared case-sensitively.
type PathFilter struct {
	extensions map[string]struct{}
	ignored    map[string]struct{}
}

// New creates a new PathFilter with the given configuration. A nil config
// matches no extensions and ignores the DefaultIgnore directories.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		extensions: make(map[string]struct{}),
		ignored:    make(map[string]struct{}),
	}

	ignoreDirs := ParseList(DefaultIgnore)
	if config != nil {
		ignoreDirs = config.IgnoreDirs
		for _, ext := range config.Extensions {
			pf.extensions[ext] = struct{}{}
		}
	}
	for _, dir := range ignoreDirs {
		pf.ignored[strings.ToLower(dir)] = struct{}{}
	}

	return pf
}

// ParseList splits a comma-separated list, trims every piece and drops empty
// and repeated pieces.
func ParseList(raw string) []string {
	return parse(raw, false)
}

// ParseExtensions is ParseList with leading dots stripped from every piece.
func ParseExtensions(raw string) []string {
	return parse(raw, true)
}

func parse(raw string, stripDots bool) []string {
	var out []string
	seen := make(map[string]struct{})
	for piece := range strings.SplitSeq(raw, ",") {
		piece = strings.TrimSpace(piece)
		if stripDots {
			piece = strings.TrimLeft(piece, ".")
		}
		if piece == "" {
			continue
		}
		if _, ok := seen[piece]; ok {
			continue
		}
		seen[piece] = struct{}{}
		out = append(out, piece)
	}
	return out
}

// HasExtensions reports whether at least one extension is configured.
func (pf *PathFilter) HasExtensions() bool {
	return len(pf.extensions) > 0
}

// SkipDir reports whether the directory at path, and everything below it,
// must be left out of a search.
func (pf *PathFilter) SkipDir(path string) bool {
	if InRecycleBin(path) {
		return true
	}

	for _, component := range strings.FieldsFunc(path, isSeparator) {
		if component == "." || component == ".." {
			continue
		}
		if _, ok := pf.ignored[strings.ToLower(component)]; ok {
			return true
		}
	}

	return false
}

// MatchFile reports whether a regular file at path has one of the configured
// extensions.
func (pf *PathFilter) MatchFile(path string) bool {
	if InRecycleBin(path) {
		return false
	}

	ext, ok := Extension(path)
	if !ok {
		return false
	}

	_, ok = pf.extensions[ext]
	return ok
}

// InRecycleBin reports whether path passes through a Windows recycle bin.
func InRecycleBin(path string) bool {
	return strings.Contains(strings.ToLower(path), recycleBin)
}

// Extension returns the text after the last dot of the final path component.
// Names without a dot, and names whose only dot is the leading one (like
// .bashrc), have no extension.
func Extension(path string) (string, bool) {
	name := path
	if i := strings.LastIndexFunc(path, isSeparator); i >= 0 {
		name = path[i+1:]
	}

	lastDotIndex := strings.LastIndex(name, ".")
	if lastDotIndex <= 0 {
		return "", false
	}

	return name[lastDotIndex+1:], true
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
