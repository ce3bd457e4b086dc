package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-docgen/internal/converter"
	"github.com/frherrer/atomic-docgen/internal/loader"
	"github.com/frherrer/atomic-docgen/internal/renderer"
	"github.com/frherrer/atomic-docgen/internal/verify"
)

var checkAnchors bool

var validateCmd = &cobra.Command{
	Use:   "validate <Txxxx.yaml>",
	Short: "Validate a technique YAML file",
	Long: `Loads a technique file and checks its structural preconditions:
attack_technique, display_name, and a non-empty atomic_tests list. With
--anchors the document is also rendered and every table-of-contents link is
checked against the generated heading anchors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		tech, err := loader.Load(path, data)
		if err != nil {
			return err
		}
		if err := loader.Validate(tech); err != nil {
			return err
		}
		if !loader.ValidID(tech.ID) {
			log.Warnf("Technique id %q does not match T####(.###)", tech.ID)
		}

		if checkAnchors {
			markdown := renderer.RenderDocument(tech, converter.Convert(tech), "")
			report, err := verify.Anchors([]byte(markdown))
			if err != nil {
				return err
			}
			if !report.Ok() {
				return fmt.Errorf("unresolved TOC anchors: %s", strings.Join(report.Unresolved, ", "))
			}
		}

		fmt.Printf("Technique file %q is valid (%s, %d test(s)).\n", path, tech.ID, len(tech.Tests))
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&checkAnchors, "anchors", false, "render and verify TOC anchors")
	rootCmd.AddCommand(validateCmd)
}
