// Package main is the entry point for the salesreport service.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"salesreport/internal/config"
	"salesreport/internal/dataset"
	"salesreport/internal/insights"
	"salesreport/internal/logger"
	"salesreport/internal/mailer"
	"salesreport/internal/models"
	"salesreport/internal/pdf"
	"salesreport/internal/reports"
	"salesreport/internal/scheduler"
	"salesreport/internal/storage"
)

// runTimeout bounds a single report run when triggered by the scheduler
const runTimeout = 10 * time.Minute

var (
	sendNow     bool
	runSchedule bool
)

var rootCmd = &cobra.Command{
	Use:     "salesreport",
	Short:   "Generates and emails daily sales reports",
	Long:    "salesreport loads sales data, renders a revenue chart and HTML report,\noptionally exports a PDF, and delivers everything by email. It can run once\nor on a daily schedule.",
	Version: config.GetVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !sendNow && !runSchedule {
			return cmd.Help()
		}

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		logger.Configure(cfg.LogLevel, cfg.LogFormat)

		if sendNow {
			return buildAndSend(cmd.Context(), cfg)
		}
		return runScheduler(cmd.Context(), cfg)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&sendNow, "send-now", false, "Generate and send one report immediately")
	rootCmd.Flags().BoolVar(&runSchedule, "schedule", false, "Run as a daemon sending a report daily at the configured time")
	rootCmd.MarkFlagsMutuallyExclusive("send-now", "schedule")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildAndSend executes one full report run: load, build, store, deliver
func buildAndSend(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	log := logger.WithComponent("RUN")

	table, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("Dataset loaded", map[string]interface{}{"records": table.Len()})

	builder := newBuilder(cfg)
	generatedAt := time.Now()

	bundle, m, err := builder.BuildBundle(ctx, table, generatedAt)
	if err != nil {
		return err
	}

	if err := storeReport(ctx, cfg, bundle, m, generatedAt); err != nil {
		return err
	}

	sender := mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.FromAddress(), cfg.Recipients())
	if err := sender.Send(ctx, bundle); err != nil {
		return err
	}

	log.Info("Report run complete", map[string]interface{}{
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	return nil
}

// loadDataset reads sales records from the configured URL or local file
func loadDataset(ctx context.Context, cfg *config.Config) (*models.Table, error) {
	loader := dataset.NewLoader()
	if cfg.DataURL != "" {
		return loader.LoadURL(ctx, cfg.DataURL)
	}
	return loader.LoadFile(cfg.DataFile)
}

// newBuilder assembles the report builder from configuration
func newBuilder(cfg *config.Config) *reports.Builder {
	formatter := reports.NewFormatter(reports.NewTemplateLoader(cfg.ReportTemplate))

	var exporter reports.PDFExporter
	if cfg.EnablePDF {
		exporter = pdf.NewExporter()
	}

	var commentary reports.InsightsProvider
	if cfg.OpenAIAPIKey != "" {
		commentary = insights.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	return reports.NewBuilder(cfg.ReportTitle, cfg.EnablePDF, formatter, exporter, commentary)
}

// storeReport persists the run's artifacts through the configured backend
func storeReport(ctx context.Context, cfg *config.Config, bundle *models.ArtifactBundle, m *models.Metrics, generatedAt time.Time) error {
	client, err := storage.NewStorageClient(ctx, storage.StorageMode(cfg.StorageMode), cfg.OutputDir, cfg.GCSBucket)
	if err != nil {
		return err
	}
	defer client.Close()

	files, err := reports.NewFileGenerator().GenerateAllFiles(bundle, m, generatedAt)
	if err != nil {
		return err
	}

	return reports.NewStorageOrchestrator(client).StoreAllFiles(ctx, files, generatedAt)
}

// runScheduler blocks, firing buildAndSend daily at the configured time
func runScheduler(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("RUN")

	sched, err := scheduler.New(cfg.ScheduleTime)
	if err != nil {
		return err
	}

	log.Info("Starting daily schedule", map[string]interface{}{
		"time": cfg.ScheduleTime,
		"spec": sched.Spec(),
	})

	err = sched.Run(ctx, func() {
		runCtx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := buildAndSend(runCtx, cfg); err != nil {
			log.Error("Scheduled run failed", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		log.Info("Shutdown requested, scheduler stopped")
		return nil
	}
	return err
}
