package configuration

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerKeys lower-cases all keys of the given map and of all maps nested in it. YAML maps with non-string keys are
// converted to string maps.
func lowerKeys(m map[string]interface{}) map[string]interface{} {
	lowered := make(map[string]interface{}, len(m))
	for key, value := range m {
		switch nested := value.(type) {
		case map[string]interface{}:
			value = lowerKeys(nested)
		case map[interface{}]interface{}:
			value = lowerKeys(cast.ToStringMap(nested))
		}

		lowered[strings.ToLower(key)] = value
	}

	return lowered
}

// JSONLowerParser is a koanf.Parser for JSON config files that lower-cases all keys.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal JSON config")
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// YAMLLowerParser is a koanf.Parser for YAML config files that lower-cases all keys.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal YAML config")
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}

// TOMLLowerParser is a koanf.Parser for TOML config files that lower-cases all keys.
type TOMLLowerParser struct{}

// Unmarshal parses the given TOML bytes.
func (p *TOMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal TOML config")
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to TOML bytes.
func (p *TOMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}
