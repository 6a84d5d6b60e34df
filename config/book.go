package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v3"
)

// LoadBookOptions reads book.toml at path and decodes our table from it the
// same way it would be decoded from the configuration mdbook passes along.
func LoadBookOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read book configuration: %w", err)
	}
	return DecodeBookOptions(string(data))
}

// DecodeBookOptions is LoadBookOptions for in-memory book.toml content.
func DecodeBookOptions(data string) (*Options, error) {
	var book map[string]any
	if _, err := toml.Decode(data, &book); err != nil {
		return nil, fmt.Errorf("unable to parse book configuration: %w", err)
	}
	return FromContext(book)
}

// DumpOptions returns effective preprocessor options as YAML, disabled
// settings are shown as false.
func DumpOptions(opts *Options) ([]byte, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options to yaml: %w", err)
	}
	return data, nil
}
