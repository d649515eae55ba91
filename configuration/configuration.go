// Package configuration merges the parameters of the command line tools from config files, environment variables and
// command line flags.
package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrConfigDoesNotExist is returned by LoadFile if there is no file at the given path.
	ErrConfigDoesNotExist = ierrors.New("config file does not exist")
	// ErrUnknownConfigFormat is returned by LoadFile for files that are neither JSON, YAML nor TOML.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration is a case-insensitive view on parameters that are merged from config files, environment variables
// and command line flags. Keys are nested by ".", so "logger.level" addresses {"logger": {"level": ...}}.
type Configuration struct {
	ko *koanf.Koanf
}

// New returns an empty Configuration.
func New() *Configuration {
	return &Configuration{ko: koanf.New(".")}
}

// LoadFile merges the parameters of a .json, .yaml, .yml or .toml file into the Configuration. Values of the file replace
// values that were loaded before.
func (c *Configuration) LoadFile(filePath string) error {
	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	if _, err = os.Stat(filePath); os.IsNotExist(err) {
		return ierrors.Wrapf(ErrConfigDoesNotExist, "failed to load %s", filePath)
	} else if err != nil {
		return ierrors.Wrapf(err, "failed to load %s", filePath)
	}

	if err = c.ko.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to parse %s", filePath)
	}

	return nil
}

// LoadFlagSet merges the flags of the FlagSet into the Configuration. Flags that were set on the command line replace
// any loaded value, the defaults of the other flags only fill keys that are still missing.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.ko.Load(lowerPosflagProvider(flagSet, ".", c.ko), nil)
}

// LoadEnvironmentVars replaces known keys by the environment variables with the given prefix. PREFIX_LOGGER_LEVEL
// replaces "logger.level", variables without a loaded key are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.ko.Load(env.Provider(prefix, ".", func(variable string) string {
		if key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(variable, prefix)), "_", "."); c.ko.Exists(key) {
			return key
		}

		return ""
	}), nil)
}

// Set replaces the value of the given key.
func (c *Configuration) Set(key string, value any) error {
	return c.ko.Load(confmap.Provider(map[string]interface{}{
		strings.ToLower(key): value,
	}, "."), nil)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.ko
}

func parserFor(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "failed to load %s", filePath)
	}
}
