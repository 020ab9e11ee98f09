package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"org-simulator/internal/config"
	"org-simulator/internal/database"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/service"
	"org-simulator/internal/vocabulary"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func generateCmd() *cobra.Command {
	var keepExisting bool
	var users int
	var seed uint64
	var name string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one organization into the database",
		Long: "Drops and re-creates every table, then generates an organization, its teams, employees, " +
			"projects and tasks in a single transaction. A failed run leaves the store empty.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("users") {
				cfg.TotalUsers = users
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("name") {
				cfg.OrganizationName = name
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runGenerate(ctx, cmd.OutOrStdout(), cfg, db, keepExisting)
		},
	}

	cmd.Flags().BoolVar(&keepExisting, "keep-existing", false, "keep existing tables and data instead of recreating them")
	cmd.Flags().IntVar(&users, "users", 0, "number of employees (overrides SIM_TOTAL_USERS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (overrides SIM_SEED)")
	cmd.Flags().StringVar(&name, "name", "", "organization name (overrides SIM_ORGANIZATION_NAME)")
	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, cfg *config.Config, db *gorm.DB, keepExisting bool) error {
	if !keepExisting {
		logrus.Info("Recreating database tables")
		if err := database.Reset(db); err != nil {
			return err
		}
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	rec := metrics.New()
	simulation := service.NewSimulationService(
		repository.NewStore(db),
		vocab,
		newCompanySource(cfg, rec),
		newContentProvider(cfg, vocab, rec),
		validator.New(),
		rec,
	)

	err = executeRun(ctx, out, simulation, repository.NewSummaryRepository(db), service.NewSimulationOptions(cfg), databaseName(cfg))
	reportMetrics(rec, cfg.MetricsTextfile)
	return err
}

// executeRun runs one simulation and prints its banner with the resulting store size
func executeRun(ctx context.Context, out io.Writer, simulation service.SimulationServiceInterface, summaryRepo repository.SummaryRepositoryInterface, opts service.SimulationOptions, dbName string) error {
	summary, err := simulation.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	size, err := summaryRepo.GetDatabaseSize()
	if err != nil {
		logrus.WithError(err).Warn("Failed to read database size")
		size = "unknown size"
	}
	printSummary(out, summary, dbName, size)
	return nil
}

// reportMetrics logs the run's counters and writes them to path when set,
// for a node-exporter textfile collector
func reportMetrics(rec *metrics.Recorder, path string) {
	values, err := rec.Snapshot()
	if err != nil {
		logrus.WithError(err).Warn("Failed to gather metrics")
		return
	}
	fields := logrus.Fields{}
	for name, v := range values {
		fields[name] = v
	}
	logrus.WithFields(fields).Info("Generation metrics")

	if path == "" {
		return
	}
	if err := rec.WriteToTextfile(path); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("Failed to write metrics textfile")
	}
}

func loadVocabulary(cfg *config.Config) (*vocabulary.Vocabulary, error) {
	if cfg.VocabularyFile == "" {
		return vocabulary.Default(), nil
	}
	vocab, err := vocabulary.LoadFile(cfg.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return vocab, nil
}

func newCompanySource(cfg *config.Config, rec *metrics.Recorder) service.CompanyNameSource {
	fallback := service.NewStaticCompanySource(service.FallbackCompanyNames)
	if cfg.CompanySourceURL == "" {
		return service.NewResilientCompanySource(nil, fallback, rec)
	}
	live := service.NewWikipediaCompanySource(cfg.CompanySourceURL, service.CompanyFetchTimeout(cfg), uint64(time.Now().UnixNano()))
	return service.NewResilientCompanySource(live, fallback, rec)
}

func newContentProvider(cfg *config.Config, vocab *vocabulary.Vocabulary, rec *metrics.Recorder) service.ContentProvider {
	mock := service.NewMockContentProvider(vocab, cfg.Seed)

	var backend service.ContentBackend
	if openai, err := service.NewOpenAIContentBackend(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL); err == nil {
		backend = openai
	} else {
		logrus.WithError(err).Info("Generative content backend disabled, using mock content")
	}
	return service.NewResilientContentProvider(backend, mock, service.ContentTimeout(cfg), rec)
}

// databaseName hides credentials from the printed DSN
func databaseName(cfg *config.Config) string {
	if cfg.DatabaseName != "" && !strings.Contains(cfg.DatabaseURL, "://") {
		return cfg.DatabaseName
	}
	dsn := cfg.DatabaseURL
	if i := strings.LastIndex(dsn, "@"); i >= 0 {
		dsn = dsn[i+1:]
	} else if i := strings.Index(dsn, "://"); i >= 0 {
		dsn = dsn[i+3:]
	}
	if i := strings.Index(dsn, "?"); i >= 0 {
		dsn = dsn[:i]
	}
	return dsn
}

func printSummary(out io.Writer, summary *service.SimulationSummary, dbName, dbSize string) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "SIMULATION COMPLETE")
	fmt.Fprintf(out, "Company:   %s (%s)\n", summary.Organization, summary.Domain)
	fmt.Fprintf(out, "Employees: %d\n", summary.Users)
	fmt.Fprintf(out, "Teams:     %d\n", summary.Teams)
	fmt.Fprintf(out, "Projects:  %d\n", summary.Projects)
	fmt.Fprintf(out, "Tasks:     %d\n", summary.Tasks)
	fmt.Fprintf(out, "Database:  %s (%s)\n", dbName, dbSize)
	fmt.Fprintf(out, "Seed:      %d\n", summary.Seed)
	fmt.Fprintf(out, "Elapsed:   %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Fprintln(out, rule)
}
