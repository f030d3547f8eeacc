package types

// FileConfig is the shape of the optional YAML config file. Nil fields were
// not set in the file.
type FileConfig struct {
	Extensions *string `yaml:"extensions"`
	Ignore     *string `yaml:"ignore"`
	MaxDepth   *int    `yaml:"max_depth"`
	Verbose    *bool   `yaml:"verbose"`
	Count      *bool   `yaml:"count"`
}
