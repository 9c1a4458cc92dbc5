package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"internhunt/internal/browser"
	"internhunt/internal/concurrency"
	"internhunt/internal/config"
	"internhunt/internal/dashboard"
	"internhunt/internal/dedupe"
	"internhunt/internal/domain"
	"internhunt/internal/export"
	"internhunt/internal/fetch"
	"internhunt/internal/rank"
	"internhunt/internal/ratelimit"
	"internhunt/internal/retry"
	"internhunt/internal/scoring"
	"internhunt/internal/sftpclient"
	"internhunt/internal/skills"
	"internhunt/internal/sources"
	"internhunt/internal/sources/internshala"
	"internhunt/internal/sources/letsintern"
	"internhunt/internal/sources/unstop"
	"internhunt/internal/wizard"
)

var (
	flagKeywords   string
	flagReject     string
	flagResume     string
	flagMaxResults int
	flagNoBrowser  bool
	flagNoUpload   bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "internhunt",
	Short: "Aggregate and rank internship listings from multiple boards",
	Long: "internhunt fetches internship listings from Internshala, LetsIntern and " +
		"Unstop concurrently, scores them against your keywords and resume skills, " +
		"removes cross-site duplicates and writes a ranked HTML dashboard.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagKeywords, "keywords", "", "comma-separated wanted keywords (skips the wizard)")
	rootCmd.Flags().StringVar(&flagReject, "reject", "", "comma-separated reject keywords (with --keywords)")
	rootCmd.Flags().StringVar(&flagResume, "resume", "", "path to a plain-text resume for skill extraction")
	rootCmd.Flags().IntVar(&flagMaxResults, "max-results", 0, "cap on ranked results (with --keywords, default 50)")
	rootCmd.Flags().BoolVar(&flagNoBrowser, "no-browser", false, "do not open the dashboard in a browser")
	rootCmd.Flags().BoolVar(&flagNoUpload, "no-upload", false, "skip the SFTP upload even when configured")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefs, err := collectPreferences(log)
	if err != nil {
		return fmt.Errorf("collecting preferences: %w", err)
	}

	if flagResume != "" {
		text, err := os.ReadFile(flagResume)
		if err != nil {
			return fmt.Errorf("reading resume: %w", err)
		}
		prefs.ResumeSkills = skills.Extract(string(text))
		log.Info("resume skills extracted", zap.Int("skills", len(prefs.ResumeSkills)))
	}

	engine := &fetch.Engine{
		Sources: buildSources(cfg, log),
		Limiter: ratelimit.New(cfg.RateInterval),
		Retry: retry.Config{
			MaxAttempts: 1 + cfg.MaxRetries,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    retry.DefaultConfig().MaxDelay,
		},
		Budget: cfg.FetchBudget,
		Log:    log,
	}

	result := engine.FetchAll(ctx, prefs)
	printReports(result.Reports)

	scorer := scoring.NewEngine(prefs, cfg.MinScore, log)
	scored := scorer.ScoreAllParallel(ctx, result.Listings, concurrency.DefaultOptions().MaxWorkers)
	deduped := dedupe.Dedupe(scored)
	ranked := rank.Rank(deduped, prefs.MaxResults)

	fmt.Printf("\n%d listings fetched, %d scored, %d after dedup, %d ranked\n\n",
		len(result.Listings), len(scored), len(deduped), len(ranked))

	gen := dashboard.New(cfg.OutputDir, log)
	dashPath, err := gen.Generate(ranked, prefs)
	if err != nil {
		return fmt.Errorf("generating dashboard: %w", err)
	}
	fmt.Println("Dashboard:", dashPath)

	csvPath := strings.TrimSuffix(dashPath, filepath.Ext(dashPath)) + ".csv"
	if err := writeCSV(csvPath, ranked); err != nil {
		log.Warn("csv export failed", zap.Error(err))
	} else {
		fmt.Println("CSV export:", csvPath)
	}

	uploadArtifacts(ctx, cfg, log, dashPath, csvPath)

	if !flagNoBrowser {
		if err := browser.OpenFile(dashPath); err != nil {
			log.Warn("could not open browser", zap.Error(err))
		}
	}
	return nil
}

// collectPreferences uses the flags when --keywords is given, otherwise
// runs the interactive wizard on stdin.
func collectPreferences(log *zap.Logger) (domain.Preferences, error) {
	if flagKeywords == "" {
		return wizard.New(os.Stdin, os.Stdout, log).Run()
	}

	maxResults := flagMaxResults
	if maxResults <= 0 {
		maxResults = 50
	}
	return domain.Preferences{
		WantedKeywords: splitFlag(flagKeywords),
		RejectKeywords: splitFlag(flagReject),
		Remote:         domain.RemoteAny,
		MaxPostAgeDays: 30,
		MaxResults:     maxResults,
	}, nil
}

func buildSources(cfg config.Config, log *zap.Logger) []sources.Source {
	return []sources.Source{
		internshala.New(cfg.InternshalaBaseURL, cfg.PagesPerSource, cfg.RequestTimeout, log),
		letsintern.New(cfg.LetsInternBaseURL, cfg.PagesPerSource, cfg.RequestTimeout, log),
		unstop.New(cfg.UnstopBaseURL, cfg.PagesPerSource, cfg.UnstopHeadless, cfg.UnstopWait, log),
	}
}

func printReports(reports []domain.FetchReport) {
	fmt.Println("\nSource summary:")
	for _, r := range reports {
		status := "ok"
		if !r.Success {
			status = "FAILED"
		}
		fmt.Printf("  %-12s %s  pages %d/%d  listings %d", r.Source, status, r.PagesSucceeded, r.PagesAttempted, r.Listings)
		if r.Err != "" {
			fmt.Printf("  (%s)", r.Err)
		}
		fmt.Println()
	}
}

func writeCSV(path string, ranked []domain.ScoredListing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, ranked)
}

func uploadArtifacts(ctx context.Context, cfg config.Config, log *zap.Logger, paths ...string) {
	sftpCfg := sftpclient.Config{
		Host:      cfg.SFTPHost,
		Port:      cfg.SFTPPort,
		User:      cfg.SFTPUser,
		Pass:      cfg.SFTPPass,
		RemoteDir: cfg.SFTPRemoteDir,
	}
	if flagNoUpload || !sftpCfg.Enabled() {
		return
	}
	if err := sftpclient.UploadFiles(ctx, sftpCfg, log, paths...); err != nil {
		log.Warn("sftp upload failed", zap.Error(err))
	}
}

func splitFlag(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
