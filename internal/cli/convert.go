package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-docgen/internal/attack"
	"github.com/frherrer/atomic-docgen/internal/config"
	"github.com/frherrer/atomic-docgen/internal/generator"
	"github.com/frherrer/atomic-docgen/internal/scanner"
)

var (
	outPath        string
	attackDescFile string
	fetchMITRE     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [Txxxx.yaml]",
	Short: "Convert technique YAML to Markdown",
	Long: `Converts a single technique file when a path is given, or runs a
config-driven batch over the configured input directories when no path is
given. The ATT&CK description block is included when --attack-desc-file or
--fetch-mitre is set (or the equivalent config keys for batch runs).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setLogLevel(cfg.Logging.Level)
		if dryRun {
			cfg.DryRun = true
		}

		if len(args) == 1 {
			return convertSingle(cmd.Context(), cfg, args[0])
		}
		return convertBatch(cmd.Context(), cfg)
	},
}

func init() {
	convertCmd.Flags().StringVar(&outPath, "out", "", "output .md path (default: same folder, same name)")
	convertCmd.Flags().StringVar(&attackDescFile, "attack-desc-file", "", "text file containing the ATT&CK description to embed")
	convertCmd.Flags().BoolVar(&fetchMITRE, "fetch-mitre", false, "fetch the ATT&CK description from MITRE")
	rootCmd.AddCommand(convertCmd)
}

// loadConfig loads the config file when present and falls back to defaults
// otherwise, so single-file conversion works without an atomicdoc.yaml.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func convertSingle(ctx context.Context, cfg *config.Config, yamlPath string) error {
	gen := generator.NewGenerator(nil, buildSource(cfg), log)

	markdown, err := gen.ConvertFile(ctx, yamlPath)
	if err != nil {
		return err
	}

	target := outPath
	if target == "" {
		target = strings.TrimSuffix(yamlPath, filepath.Ext(yamlPath)) + cfg.Output.Suffix
	}

	if cfg.DryRun {
		log.Infof("[DRY-RUN] Would write: %s", target)
		return nil
	}
	if err := os.WriteFile(target, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Printf("Wrote: %s\n", target)
	return nil
}

func convertBatch(ctx context.Context, cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	gen := generator.NewGenerator(s, buildSource(cfg), log)
	return gen.Generate(ctx, cfg)
}

// buildSource picks the ATT&CK description source. Command-line flags win
// over the config file.
func buildSource(cfg *config.Config) attack.Source {
	if attackDescFile != "" {
		return &attack.FileSource{Path: attackDescFile}
	}
	if fetchMITRE {
		return attack.NewMITRESource(cfg.Attack.BaseURL, attackTimeout(cfg))
	}

	switch cfg.Attack.Source {
	case "file":
		return &attack.FileSource{Path: cfg.Attack.File}
	case "fetch":
		return attack.NewMITRESource(cfg.Attack.BaseURL, attackTimeout(cfg))
	}
	return nil
}

func attackTimeout(cfg *config.Config) time.Duration {
	d, err := time.ParseDuration(cfg.Attack.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}
