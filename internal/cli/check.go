package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/redact"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/scanner"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/whitelist"
)

func newCheckCmd() *cobra.Command {
	var (
		asJSON    bool
		redacted  bool
		failOnPII bool
	)
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Scan text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}

			wl, err := whitelist.NewWhitelist(cfg.WhitelistPath)
			if err != nil {
				return err
			}
			res := pii.AtLeast(cfg.MinConfidenceLevel())(wl.Filter(scanner.Engine(cfg).Scan(text)))

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			case redacted:
				fmt.Fprintln(out, redact.Text(text, res, redact.Suggestion))
			default:
				printFindings(out, res)
			}

			if failOnPII && res.HasPII {
				return errPIIFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scan result as JSON")
	cmd.Flags().BoolVar(&redacted, "redact", false, "print the text with findings replaced")
	cmd.Flags().BoolVar(&failOnPII, "fail", false, "exit with status 1 when anything is found")
	return cmd
}

var confidenceColors = map[models.Confidence]*color.Color{
	models.ConfidenceHigh:   color.New(color.FgRed, color.Bold),
	models.ConfidenceMedium: color.New(color.FgYellow),
	models.ConfidenceLow:    color.New(color.FgCyan),
}

func printFindings(w io.Writer, res models.ScanResult) {
	if !res.HasPII {
		color.New(color.FgGreen).Fprintln(w, "Ingen personopplysninger funnet.")
		return
	}

	warnings := append([]models.Finding(nil), res.Warnings...)
	models.SortByConfidence(warnings)
	for _, f := range warnings {
		c, ok := confidenceColors[f.Confidence]
		if !ok {
			c = color.New(color.Reset)
		}
		c.Fprintf(w, "%-10s", models.ConfidenceLabel(f.Confidence))
		fmt.Fprintf(w, " %s (posisjon %d)\n", f.Message, f.Offset)
		if f.Suggestion != "" {
			fmt.Fprintf(w, "           forslag: %s\n", f.Suggestion)
		}
	}
	fmt.Fprintf(w, "\n%d funn, høyeste sikkerhet: %s\n", len(res.Warnings), res.MaxConfidence)
}
