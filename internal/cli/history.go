package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
)

func newHistoryCmd() *cobra.Command {
	var id uint
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List earlier scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := storage.Init(cfg.DBPath); err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			if id != 0 {
				return printScan(cmd.OutOrStdout(), id)
			}
			return printScans(cmd.OutOrStdout())
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "show the findings per type of one scan")
	return cmd
}

func printScans(out io.Writer) error {
	scans, err := storage.GetAllScans()
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		fmt.Fprintln(out, "No scans recorded.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"ID", "Startet", "Mappe", "Status", "Filer", "Med funn", "Funn", "Tid"})
	for _, s := range scans {
		table.Append([]string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.StartTime.Format("2006-01-02 15:04"),
			s.RootPath,
			s.Status,
			strconv.FormatInt(s.TotalFiles, 10),
			strconv.FormatInt(s.PIIFiles, 10),
			strconv.FormatInt(s.TotalFindings, 10),
			s.Duration.Round(time.Second).String(),
		})
	}
	return table.Render()
}

func printScan(out io.Writer, id uint) error {
	scan, err := storage.GetScanByID(id)
	if err != nil {
		return fmt.Errorf("scan %d: %w", id, err)
	}
	counts, err := storage.TypeCounts(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scan %d of %s (%s)\n", scan.ID, scan.RootPath, scan.Status)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Type", "Antall"})
	for _, t := range models.AllTypes {
		if n := counts[string(t)]; n > 0 {
			table.Append([]string{models.TypeLabel(t), strconv.FormatInt(n, 10)})
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	recurring, err := storage.Recurring(id, 10)
	if err != nil {
		return err
	}
	if len(recurring) > 0 {
		fmt.Fprintf(out, "\n%d values appear in more than one file:\n", len(recurring))
		for _, r := range recurring {
			fmt.Fprintf(out, "  %s %s in %d files\n", models.TypeLabel(models.FindingType(r.Type)), r.Fingerprint, r.Files)
		}
	}
	return nil
}
