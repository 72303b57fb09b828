// Package config loads and validates the snapcheck configuration file.
package config

import (
	"fmt"

	"snapcheck/pkg/log"
	"snapcheck/pkg/model"
	"snapcheck/pkg/system"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

func LoadConfig(filename string, logger log.Logger) (*model.Config, error) {
	f, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", filename, err)
	}

	var cfg model.Config
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", filename, err)
	}

	cfg.ApplyDefaults()

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.Sort()

	logger.Debug("configuration loaded", "file", filename, "targets", len(cfg.Targets))
	return &cfg, nil
}

// validate runs any Validator and converts its findings into an error.
func validate(v model.Validator) error {
	if errs := v.Validate(); len(errs) > 0 {
		return errs
	}
	return nil
}
