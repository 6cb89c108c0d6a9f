package cli

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/reporting"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/scanner"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
)

type scanFlags struct {
	path      string
	workers   int
	fast      bool
	jsonOut   string
	htmlOut   string
	noHistory bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "directory of exported case reports")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of concurrent workers (default: from config)")
	cmd.Flags().BoolVar(&f.fast, "fast", false, "skip files larger than 1 MB")
	cmd.Flags().StringVar(&f.jsonOut, "json-out", "", "JSON report path (default: from config)")
	cmd.Flags().StringVar(&f.htmlOut, "html-out", "", "HTML report path (default: from config)")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "do not record the scan in the history database")
}

func (f *scanFlags) apply(cfg *config.Config) {
	if f.path != "" {
		cfg.RootPath = f.path
	}
	if cfg.RootPath == "" {
		cfg.RootPath = "."
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.fast {
		cfg.FastMode = true
	}
	if f.jsonOut != "" {
		cfg.JSONReport = f.jsonOut
	}
	if f.htmlOut != "" {
		cfg.HTMLReport = f.htmlOut
	}
}

func newScanCmd() *cobra.Command {
	var flags scanFlags
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory of case reports and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags.apply(cfg)

			if !flags.noHistory {
				if err := storage.Init(cfg.DBPath); err != nil {
					return fmt.Errorf("init history: %w", err)
				}
			}

			report := runScan(cmd.OutOrStdout(), cfg)

			if err := report.SaveJSON(cfg.JSONReport); err != nil {
				log.Printf("[ERROR] failed to save JSON report: %v", err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "JSON report saved to: %s\n", cfg.JSONReport)
			}
			if err := report.SaveHTML(cfg.HTMLReport); err != nil {
				log.Printf("[ERROR] failed to save HTML report: %v", err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "HTML report saved to: %s\n", cfg.HTMLReport)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// runScan walks cfg.RootPath and prints a summary table.
func runScan(out io.Writer, cfg *config.Config) *reporting.Report {
	fmt.Fprintf(out, "Scanning %s with %d workers\n", cfg.RootPath, cfg.Workers)
	start := time.Now()

	s := scanner.NewScanner(cfg)
	s.Start()
	s.Wait()

	fmt.Fprintf(out, "\nScan complete in %s\n", time.Since(start).Round(time.Millisecond))
	printSummary(out, s.Report.Summary)
	return s.Report
}

func printSummary(out io.Writer, sum reporting.Summary) {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Type", "Alvorlighet", "Antall"})
	for _, t := range models.AllTypes {
		if n := sum.CountsByType[t]; n > 0 {
			table.Append([]string{models.TypeLabel(t), string(models.SeverityOf(t)), strconv.FormatInt(n, 10)})
		}
	}
	table.Append([]string{"Totalt", "", strconv.FormatInt(sum.TotalPIIFound, 10)})
	if err := table.Render(); err != nil {
		log.Printf("[ERROR] failed to render summary: %v", err)
	}
	fmt.Fprintf(out, "%d of %d files contain possible personal data, %d could not be read\n",
		sum.TotalFilesWithPII, sum.TotalFilesScanned, sum.FailedFiles)
}
