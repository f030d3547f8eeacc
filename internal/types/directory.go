package types

// PathFilterConfig contains configuration for the path filter.
type PathFilterConfig struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
	IgnoreDirs []string `json:"ignoreDirs" yaml:"ignore"`
}
