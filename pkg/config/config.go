// Package config loads the rule-set configuration of the filter.
//
// Two shapes are supported: a user-supplied config.json (or config.yaml)
// inside the filter data directory, and a built-in extension table embedded
// into the binary. Both produce the same Config value; the caller decides
// which classifier variant to pair it with.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

const (
	// FilterDataPath is where staged roots and the config file live,
	// relative to the working directory.
	FilterDataPath = "data/custom_project"

	// ConfigFileName is the primary rule-set file name.
	ConfigFileName = "config.json"

	// ConfigFileNameYAML is the accepted YAML alternative.
	ConfigFileNameYAML = "config.yaml"
)

// Config is the immutable rule-set of a single run.
type Config struct {
	// ExtensionsMap maps suffix tokens (or derived extensions, for the
	// built-in variant) to destination templates with '/' separators.
	ExtensionsMap map[string]string `koanf:"extensions_map"`

	// Roots lists the source roots to process, resolved under the filter
	// data directory.
	Roots []string `koanf:"roots"`
}

// Default returns the built-in configuration: the fixed extension table with
// the filter data directory itself as the single root.
func Default() *Config {
	cfg, err := parseDefaults()
	if err != nil {
		// The embedded table ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

func parseDefaults() (*Config, error) {
	k := newKoanf()
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	return unmarshalConfig(k)
}

// newKoanf creates a koanf instance with '/' as the key delimiter. The
// default '.' delimiter would split suffix tokens like "bpe.json" into
// nested keys; '/' never occurs in a file-name suffix.
func newKoanf() *koanf.Koanf {
	return koanf.New("/")
}
