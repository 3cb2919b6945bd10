// Package remedies holds the static remedy library shown on the profile
// screen. The catalog ships embedded; an on-disk file can override it.
package remedies

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var defaultLibrary []byte

// Remedy is one catalog entry.
type Remedy struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Concern     string `yaml:"concern"`
}

type library struct {
	Remedies []Remedy `yaml:"remedies"`
}

// Load parses a remedy library file.
func Load(path string) ([]Remedy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read remedy library: %w", err)
	}
	return parse(data)
}

// LoadOrDefault loads the library from path, falling back to the embedded
// catalog when the path is empty or unreadable.
func LoadOrDefault(path string) []Remedy {
	if path != "" {
		if remedies, err := Load(path); err == nil {
			return remedies
		}
	}
	return Default()
}

// Default returns the embedded catalog.
func Default() []Remedy {
	remedies, err := parse(defaultLibrary)
	if err != nil {
		// The embedded document is fixed at build time.
		panic(fmt.Sprintf("embedded remedy library: %v", err))
	}
	return remedies
}

func parse(data []byte) ([]Remedy, error) {
	var lib library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse remedy library: %w", err)
	}
	return lib.Remedies, nil
}
