package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerPosflag is a koanf.Provider that reads the flags of a pflag.FlagSet with lower-cased keys.
type lowerPosflag struct {
	delim   string
	flagSet *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider for the given FlagSet whose keys are nested by delim, so that the flag
// "logger.level" becomes {logger: {level: ...}}.
//
// Flags that were explicitly set on the command line always win. The defaults of the remaining flags are only used
// for keys that ko does not know yet, so that they do not overwrite values that were loaded from a config file.
func lowerPosflagProvider(flagSet *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	flat := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		flat[key] = p.value(f)
	})

	return maps.Unflatten(flat, p.delim), nil
}

func (p *lowerPosflag) value(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int", "int8", "int16", "int32", "int64":
		return cast.ToInt64(f.Value.String())
	case "bool":
		value, _ := p.flagSet.GetBool(f.Name)

		return value
	case "stringSlice":
		value, _ := p.flagSet.GetStringSlice(f.Name)

		return value
	default:
		return f.Value.String()
	}
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(func(event interface{}, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}
