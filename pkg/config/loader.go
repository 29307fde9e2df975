package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/confmend/confmend/pkg/logging"
)

// LoadConfiguration builds the effective configuration from layered
// sources: built-in defaults, then the config file (if present), then
// CONFMEND_* environment variables.
func LoadConfiguration(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	if path == "" {
		path = DefaultPath()
	}

	k := koanf.New(".")

	// 1. Defaults
	defaults := Default()
	err := k.Load(confmap.Provider(map[string]interface{}{
		"main.frontend":   defaults.Main.Frontend,
		"main.unattended": defaults.Main.Unattended,
		"main.scan_paths": defaults.Main.ScanPaths,
	}, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Config file, optional
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else {
		logger.Debug().Str("path", path).Msg("No config file, using defaults")
	}

	// 3. Environment, e.g. CONFMEND_MAIN_UNATTENDED=diff
	err = k.Load(env.Provider("CONFMEND_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CONFMEND_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
