package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/codesuggest/internal/app"
	configapp "github.com/doeshing/codesuggest/internal/application/config"
	"github.com/doeshing/codesuggest/internal/domain"
	configinfra "github.com/doeshing/codesuggest/internal/infrastructure/config"
)

// ErrConfigLoaderUnavailable is returned when the container has no file loader.
var ErrConfigLoaderUnavailable = errors.New("config loader unavailable")

// GetConfigLoader extracts the config loader from the container.
func GetConfigLoader(container *app.Container) (*configinfra.FileLoader, error) {
	if container == nil || container.ConfigLoader == nil {
		return nil, ErrConfigLoaderUnavailable
	}
	return container.ConfigLoader, nil
}

// SaveConfigWithValidation validates cfg, backs up the current file and
// writes cfg in its place.
func SaveConfigWithValidation(container *app.Container, cfg domain.Config) error {
	loader, err := GetConfigLoader(container)
	if err != nil {
		return err
	}
	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	if _, err := loader.Backup(time.Now()); err != nil {
		return fmt.Errorf("backup configuration: %w", err)
	}
	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	container.Config = cfg
	return nil
}

// LookupConfigValue returns the value at a dotted key path such as
// engine.max_results. A section key returns the whole section.
func LookupConfigValue(cfg domain.Config, keyPath string) (interface{}, error) {
	tree, err := configTree(cfg)
	if err != nil {
		return nil, err
	}
	var node interface{} = tree
	for _, key := range strings.Split(keyPath, ".") {
		section, ok := node.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("key %s not found in configuration", keyPath)
		}
		if node, ok = section[key]; !ok {
			return nil, fmt.Errorf("key %s not found in configuration", keyPath)
		}
	}
	return node, nil
}

// SetConfigValue returns a copy of cfg with the leaf at keyPath replaced by
// value, parsed as YAML. Only keys that already exist in the schema can be set.
func SetConfigValue(cfg domain.Config, keyPath, value string) (domain.Config, error) {
	tree, err := configTree(cfg)
	if err != nil {
		return domain.Config{}, err
	}
	keys := strings.Split(keyPath, ".")
	parent := tree
	for _, key := range keys[:len(keys)-1] {
		child, ok := parent[key].(map[string]interface{})
		if !ok {
			return domain.Config{}, fmt.Errorf("unknown config key %s", keyPath)
		}
		parent = child
	}
	leaf := keys[len(keys)-1]
	current, ok := parent[leaf]
	if !ok {
		return domain.Config{}, fmt.Errorf("unknown config key %s", keyPath)
	}
	if _, isSection := current.(map[string]interface{}); isSection {
		return domain.Config{}, fmt.Errorf("%s is a section, set one of its keys", keyPath)
	}
	parent[leaf] = ParseYAMLValue(value)

	raw, err := yaml.Marshal(tree)
	if err != nil {
		return domain.Config{}, fmt.Errorf("marshal config: %w", err)
	}
	var updated domain.Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&updated); err != nil {
		return domain.Config{}, fmt.Errorf("invalid value for %s: %w", keyPath, err)
	}
	return updated, nil
}

// ParseYAMLValue parses input as a YAML scalar or collection. Input that is
// not valid YAML is kept as a literal string.
func ParseYAMLValue(input string) interface{} {
	var parsed interface{}
	if err := yaml.Unmarshal([]byte(input), &parsed); err != nil {
		return input
	}
	return parsed
}

func configTree(cfg domain.Config) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode config tree: %w", err)
	}
	return tree, nil
}
