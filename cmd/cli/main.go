package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mysterycheck/adapters/postgres"
	"mysterycheck/adapters/tabular"
	"mysterycheck/app"
	"mysterycheck/internal"
	"mysterycheck/internal/config"
	"mysterycheck/internal/report"
	"mysterycheck/ports"
	"mysterycheck/ui"
)

var logger = internal.DefaultLogger

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "mysterycheck",
		Short: "Murder mystery dataset validator",
		Long:  "Validates exported mystery datasets for referential integrity, timeline consistency, and game balance.",
	}

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	var writeReports bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run all validation checks and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			auditReport, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			report.WriteText(os.Stdout, auditReport)

			if writeReports {
				if err := writeReportFiles(auditReport, cfg.Output.Dir); err != nil {
					return err
				}
			}

			if !auditReport.AllPassed {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&writeReports, "reports", false, "also write markdown, HTML, and dashboard reports to the output directory")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the clue and scene analysis as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			auditReport, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
				return err
			}
			outputPath := filepath.Join(cfg.Output.Dir, "analysis.xlsx")
			writer := tabular.NewAnalysisWriter(outputPath)
			if err := writer.Write(auditReport.ClueAnalysis, auditReport.Appearances, auditReport.SceneComplexity); err != nil {
				return err
			}

			fmt.Printf("Analysis exported to %s\n", outputPath)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			server := ui.NewServer(service)
			return server.Start(cfg.Server.Port)
		},
	}
}

// buildService picks the dataset loader from the configuration: Postgres when
// DATABASE_URL is set, the exported flat files otherwise.
func buildService(ctx context.Context, cfg *config.Config) (*app.AuditService, func(), error) {
	var loader ports.DatasetLoader
	cleanup := func() {}

	if cfg.Database.URL != "" {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		loader = postgres.NewDatasetRepository(db)
		cleanup = func() { db.Close() }
		logger.Info("[CLI] Loading dataset from Postgres")
	} else {
		loader = tabular.NewDataReader(cfg.Data.CharactersFile, cfg.Data.EvidenceFile, cfg.Data.DialogueFile)
		logger.Info("[CLI] Loading dataset from %s", cfg.Data.Dir)
	}

	return app.NewAuditService(loader), cleanup, nil
}

func writeReportFiles(auditReport *app.AuditReport, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	if err := report.WriteMarkdown(auditReport, filepath.Join(outputDir, "validation_report.md")); err != nil {
		return err
	}
	if err := report.WriteMarkdownHTML(auditReport, filepath.Join(outputDir, "validation_report.html")); err != nil {
		return err
	}
	if err := report.WriteDashboard(auditReport, filepath.Join(outputDir, "validation_dashboard.html")); err != nil {
		return err
	}
	logger.Info("[CLI] Reports written to %s", outputDir)
	return nil
}
