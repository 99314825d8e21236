package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the application configuration. Later paths
// are fallbacks for the first one.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func (c AppConfig) validate() error {
	v := validator.New()
	if c.Server.Port != 0 {
		if err := v.Struct(c.Server); err != nil {
			return err
		}
	}
	if err := v.Struct(c.Defaults); err != nil {
		return err
	}
	// layers are optional; if present validate each
	for _, l := range c.Layers {
		if err := v.Struct(l); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDefaults fills the unset fields. The simple-features dialect
// defaults its srsName to EPSG:4326; the 3.2 dialect leaves it empty so
// no srsName attribute is emitted unless one is configured.
func (c *AppConfig) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Defaults.Dialect == "" {
		c.Defaults.Dialect = "3.2"
	}
	if c.Defaults.SrsName == "" && c.Defaults.Dialect == "simple" {
		c.Defaults.SrsName = "EPSG:4326"
	}
	if c.Defaults.Version == "" {
		c.Defaults.Version = "2.0.0"
	}
}

// SelectLayer chooses a layer by name; fallback to the first defined
// layer when the name is empty.
func (c AppConfig) SelectLayer(name string) (LayerConfig, bool) {
	if name != "" {
		for _, l := range c.Layers {
			if l.Name == name {
				return l, true
			}
		}
		return LayerConfig{}, false
	}
	if len(c.Layers) > 0 {
		return c.Layers[0], true
	}
	return LayerConfig{}, false
}
