package config

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Nusiq/custom-project-filter-src/pkg/errors"
)

// Load reads the rule-set file from dataPath under workingDir. config.json
// is tried first, then config.yaml. The file must define both
// "extensions_map" and "roots".
func Load(workingDir, dataPath string) (*Config, error) {
	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{ConfigFileName, json.Parser()},
		{ConfigFileNameYAML, yaml.Parser()},
	}

	var path string
	var parser koanf.Parser
	for _, c := range candidates {
		p := filepath.Join(workingDir, dataPath, c.name)
		if _, err := os.Stat(p); err == nil {
			path, parser = p, c.parser
			break
		}
	}
	if path == "" {
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unable to read %q", filepath.Join(dataPath, ConfigFileName))
	}

	k := newKoanf()
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse config file %q", path)
	}

	cfg, err := unmarshalConfig(k)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to unmarshal config file %q", path)
	}

	if len(cfg.ExtensionsMap) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"missing \"extensions_map\" property in config file %q", path)
	}
	if len(cfg.Roots) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"missing \"roots\" property in config file %q", path)
	}
	return cfg, nil
}

func unmarshalConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, err
	}
	return &cfg, nil
}
