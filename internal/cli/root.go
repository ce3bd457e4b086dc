package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for atomicdoc.
var rootCmd = &cobra.Command{
	Use:   "atomicdoc",
	Short: "Generate Markdown documentation from atomic technique YAML files",
	Long: `atomicdoc reads atomic technique definition files (Txxxx.yaml) and
renders them into Markdown documents matching the upstream Atomic Red Team
documentation style: title, ATT&CK description, table of contents, and one
section per atomic test with inputs, attack and cleanup commands.

Batch runs are driven by a YAML configuration file (atomicdoc.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "atomicdoc.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "convert but don't write files")

	log = logrus.New()
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "info", "":
		log.SetLevel(logrus.InfoLevel)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}
