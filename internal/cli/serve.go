package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/reporting"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/server"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/whitelist"
)

func newServeCmd() *cobra.Command {
	var (
		addr  string
		flags scanFlags
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scan API and the review UI",
		Long:  "Serve the scan API for the report editor. With --path the directory is scanned first and its report is shown for review.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ServerAddr = addr
			}

			if !flags.noHistory {
				if err := storage.Init(cfg.DBPath); err != nil {
					log.Printf("[ERROR] history disabled: %v", err)
					storage.DB = nil
				}
			}

			var report *reporting.Report
			if flags.path != "" {
				flags.apply(cfg)
				report = runScan(cmd.OutOrStdout(), cfg)
			}

			wl, err := whitelist.NewWhitelist(cfg.WhitelistPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[SERVER] review server at http://%s, press Ctrl+C to stop\n", cfg.ServerAddr)
			return server.NewServer(cfg, report, wl).Start(cfg.ServerAddr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config)")
	flags.register(cmd)
	return cmd
}
