// Package config loads the CLI configuration file. Every field is optional;
// flags given on the command line override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-antennae/pkg/loader"
	"github.com/goliatone/go-antennae/pkg/render"
	"github.com/goliatone/go-antennae/pkg/render/template/mustache"
)

// Config mirrors the YAML configuration file:
//
//	engine: mustache
//	output_policy: ugc
//	types: [text/html, x-tmpl-mustache]
//	ignore_attribute: data-ignore
//	name_attributes: [data-name, id]
type Config struct {
	Engine          string   `yaml:"engine"`
	OutputPolicy    string   `yaml:"output_policy"`
	Types           []string `yaml:"types"`
	IgnoreAttribute string   `yaml:"ignore_attribute"`
	NameAttributes  []string `yaml:"name_attributes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine:          mustache.Name,
		OutputPolicy:    render.PolicyNone,
		Types:           loader.DefaultTypes(),
		IgnoreAttribute: loader.DefaultIgnoreAttribute,
		NameAttributes:  loader.DefaultNameAttributes(),
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping existing values for omitted keys.
// Unknown keys are rejected to surface typos.
func Parse(data []byte, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: destination is nil")
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Validate checks values that can be verified without building engines.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Engine) == "" {
		return errors.New("engine is required")
	}
	if _, err := render.PolicyByName(c.OutputPolicy); err != nil {
		return err
	}
	return nil
}

// LoaderOptions converts the discovery settings into loader options.
func (c Config) LoaderOptions() []loader.Option {
	var opts []loader.Option
	if len(c.Types) > 0 {
		opts = append(opts, loader.WithTypes(c.Types...))
	}
	if c.IgnoreAttribute != "" {
		opts = append(opts, loader.WithIgnoreAttribute(c.IgnoreAttribute))
	}
	if len(c.NameAttributes) > 0 {
		opts = append(opts, loader.WithNameAttributes(c.NameAttributes...))
	}
	return opts
}
