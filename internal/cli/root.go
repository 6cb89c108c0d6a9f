// Package cli implements the piiscan command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
)

var (
	flagConfig        string
	flagNoColor       bool
	flagVerbose       bool
	flagMinConfidence string
	flagDBPath        string
	flagWhitelist     string
)

// errPIIFound makes check exit with status 1 without printing an error.
var errPIIFound = errors.New("personal data found")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "piiscan",
		Short:         "Find Norwegian personal data in case reports",
		Long:          "piiscan flags names, national ID numbers, phone numbers and other personal data in free-text case reports and suggests anonymised wording.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagNoColor {
				color.NoColor = true
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "piiscan.yml", "YAML config file")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&flagMinConfidence, "min-confidence", "", "hide findings below low|medium|high")
	pf.StringVar(&flagDBPath, "db", "", "scan history database")
	pf.StringVar(&flagWhitelist, "whitelist", "", "file with approved values")

	root.AddCommand(newCheckCmd(), newScanCmd(), newServeCmd(), newHistoryCmd())
	return root
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errPIIFound):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.NoColor = flagNoColor
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if flags.Changed("min-confidence") {
		cfg.MinConfidence = flagMinConfidence
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("whitelist") {
		cfg.WhitelistPath = flagWhitelist
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
