package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if cfg.Output.Suffix == "" {
		errs = append(errs, "output.suffix must not be empty")
	}
	if cfg.Output.Suffix != "" && !strings.HasPrefix(cfg.Output.Suffix, ".") {
		errs = append(errs, "output.suffix must start with a dot")
	}

	switch cfg.Attack.Source {
	case "", "none", "file", "fetch":
	default:
		errs = append(errs, fmt.Sprintf("attack.source must be one of: none, file, fetch (got %q)", cfg.Attack.Source))
	}
	if cfg.Attack.Source == "file" && cfg.Attack.File == "" {
		errs = append(errs, "attack.file must be set when attack.source is \"file\"")
	}
	if cfg.Attack.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Attack.Timeout); err != nil {
			errs = append(errs, fmt.Sprintf("attack.timeout is not a valid duration: %v", err))
		}
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
