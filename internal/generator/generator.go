package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/frherrer/atomic-docgen/internal/attack"
	"github.com/frherrer/atomic-docgen/internal/config"
	"github.com/frherrer/atomic-docgen/internal/converter"
	"github.com/frherrer/atomic-docgen/internal/domain"
	"github.com/frherrer/atomic-docgen/internal/loader"
	"github.com/frherrer/atomic-docgen/internal/renderer"
	"github.com/frherrer/atomic-docgen/internal/scanner"
	"github.com/frherrer/atomic-docgen/internal/verify"
)

// Generator is the top-level orchestrator.
type Generator interface {
	Generate(ctx context.Context, cfg *config.Config) error
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	scanner scanner.Scanner
	source  attack.Source // nil when no description source is configured
	log     *logrus.Logger
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(s scanner.Scanner, src attack.Source, log *logrus.Logger) *DefaultGenerator {
	return &DefaultGenerator{scanner: s, source: src, log: log}
}

// Generate runs the full pipeline: scan → load → convert → render → write.
// Each technique file is converted independently; a structurally broken file
// is reported and skipped without stopping the batch.
func (g *DefaultGenerator) Generate(ctx context.Context, cfg *config.Config) error {
	var allFiles []string
	for _, dir := range cfg.Input.Directories {
		g.log.Debugf("Scanning directory: %s", dir)
		files, err := g.scanner.Scan(dir, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			g.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		allFiles = append(allFiles, files...)
	}

	if len(allFiles) == 0 {
		g.log.Warn("No technique files found")
		return nil
	}

	g.log.Infof("Found %d technique file(s)", len(allFiles))

	if cfg.Output.Directory != "" && !cfg.DryRun {
		if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
			return domain.NewError("write", cfg.Output.Directory, "failed to create output directory", err)
		}
	}

	var failed []string
	for _, filePath := range allFiles {
		g.log.Debugf("Processing: %s", filePath)

		markdown, techID, err := g.convertFile(ctx, filePath)
		if err != nil {
			g.log.Errorf("Skipping %s: %v", filePath, err)
			failed = append(failed, filePath)
			continue
		}

		if cfg.Output.VerifyAnchors {
			report, verr := verify.Anchors([]byte(markdown))
			if verr != nil {
				g.log.Warnf("Anchor verification failed for %s: %v", filePath, verr)
			} else if !report.Ok() {
				g.log.Warnf("Unresolved TOC anchors in %s: %s", techID, strings.Join(report.Unresolved, ", "))
			}
		}

		outputPath := g.outputPath(filePath, cfg.Output)
		if cfg.DryRun {
			g.log.Infof("[DRY-RUN] Would write: %s", outputPath)
			continue
		}

		g.log.Infof("Writing: %s", outputPath)
		if err := os.WriteFile(outputPath, []byte(markdown), 0644); err != nil {
			return domain.NewError("write", outputPath, "failed to write output file", err)
		}
	}

	if len(failed) > 0 {
		return domain.NewError("load", "",
			fmt.Sprintf("%d of %d technique file(s) failed to convert: %s",
				len(failed), len(allFiles), strings.Join(failed, ", ")), nil)
	}

	g.log.Info("Generation complete")
	return nil
}

// ConvertFile converts a single technique file to Markdown without writing
// it anywhere. Used by the convert command in single-file mode.
func (g *DefaultGenerator) ConvertFile(ctx context.Context, filePath string) (string, error) {
	markdown, _, err := g.convertFile(ctx, filePath)
	return markdown, err
}

func (g *DefaultGenerator) convertFile(ctx context.Context, filePath string) (markdown, techID string, err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", domain.NewError("load", filePath, "failed to read technique file", err)
	}

	tech, err := loader.Load(filePath, data)
	if err != nil {
		return "", "", err
	}
	if err := loader.Validate(tech); err != nil {
		return "", "", err
	}
	if !loader.ValidID(tech.ID) {
		g.log.Warnf("Technique id %q does not match T####(.###) in %s", tech.ID, filePath)
	}

	attackDesc := g.describe(ctx, tech.ID)

	views := converter.Convert(tech)
	return renderer.RenderDocument(tech, views, attackDesc), tech.ID, nil
}

// describe resolves the supplementary ATT&CK description. Failures degrade
// to an absent description block, never to a failed conversion.
func (g *DefaultGenerator) describe(ctx context.Context, techID string) string {
	if g.source == nil {
		return ""
	}
	desc, err := g.source.Description(ctx, techID)
	if err != nil {
		g.log.Warnf("Could not resolve ATT&CK description for %s: %v", techID, err)
		return ""
	}
	return desc
}

// outputPath builds the destination path for a technique's Markdown file.
// With no output directory configured, the file lands beside its source.
func (g *DefaultGenerator) outputPath(sourcePath string, output config.OutputConfig) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := output.Directory
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return filepath.Join(dir, stem+output.Suffix)
}
