package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/conference-corpus-loader/internal/config"
	"github.com/conference-corpus-loader/internal/logger"
	"github.com/conference-corpus-loader/internal/repository/postgres"
	"github.com/conference-corpus-loader/internal/services"
	"github.com/conference-corpus-loader/internal/speakers"
	dbconfig "github.com/conference-corpus-loader/pkg/schema/config"
	"github.com/conference-corpus-loader/pkg/schema/db"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	jsonOutput     bool
	dataDir        string
	headshotsFile  string
	exactHeadshots bool
	skipScriptures bool
	skipTalks      bool
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "loader",
		Short: "Load scripture and conference talk JSON into Postgres",
		Long: `Loader normalizes scripture chapters and conference talks scraped
across several extraction campaigns, resolves speaker identities and
headshots, and writes everything to Postgres. Re-running is safe.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Input tree root (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&headshotsFile, "headshots-file", "", "YAML known-headshot registry (overrides HEADSHOTS_FILE)")
	rootCmd.PersistentFlags().BoolVar(&exactHeadshots, "exact-headshots", false, "Match headshots by exact slug only")

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Normalize the input tree and write it to Postgres",
		Args:  cobra.NoArgs,
		RunE:  runLoad,
	}
	loadCmd.Flags().BoolVar(&skipScriptures, "skip-scriptures", false, "Do not read the scriptures subtree")
	loadCmd.Flags().BoolVar(&skipTalks, "skip-talks", false, "Do not read the talks subtree")
	rootCmd.AddCommand(loadCmd)

	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize and resolve speakers without touching the store",
		Args:  cobra.NoArgs,
		RunE:  runNormalize,
	}
	normalizeCmd.Flags().BoolVar(&skipScriptures, "skip-scriptures", false, "Do not read the scriptures subtree")
	normalizeCmd.Flags().BoolVar(&skipTalks, "skip-talks", false, "Do not read the talks subtree")
	rootCmd.AddCommand(normalizeCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "slug <name>...",
		Short: "Print the speaker slug and headshot URLs for each name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSlug,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print row counts of the loaded store",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loaderOptions(cfg *config.Config) services.Options {
	opts := services.Options{
		DataDir:        cfg.DataDir,
		ScripturesDir:  cfg.ScripturesDir,
		TalksDir:       cfg.TalksDir,
		SkipScriptures: skipScriptures,
		SkipTalks:      skipTalks,
	}
	if dataDir != "" {
		opts.DataDir = dataDir
	}
	return opts
}

func headshotRegistry(cfg *config.Config) (*speakers.Registry, error) {
	path := cfg.HeadshotsFile
	if headshotsFile != "" {
		path = headshotsFile
	}
	return speakers.LoadRegistry(path, cfg.HeadshotsBaseURL, cfg.HeadshotsExactOnly || exactHeadshots)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	registry, err := headshotRegistry(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("connecting to PostgreSQL", "postgres_uri", dbconfig.GetConfig().PostgresURI)
	if err := db.InitPostgres(ctx, ""); err != nil {
		log.Error("failed to initialize PostgreSQL", "error", err)
		return err
	}
	defer func() {
		if err := db.ClosePostgres(); err != nil {
			log.Warn("error closing PostgreSQL", "error", err)
		}
	}()

	loader := services.NewLoader(db.GetPostgres(), registry, cfg.VersePageSize, log)
	report, err := loader.Run(ctx, loaderOptions(cfg))
	if report != nil {
		if jsonOutput {
			printJSON(report)
		} else {
			services.WriteSummary(os.Stdout, report)
		}
	}
	if err != nil {
		log.Error("load failed", "error", err)
		return err
	}
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	registry, err := headshotRegistry(cfg)
	if err != nil {
		return err
	}

	batch, err := services.NewLoader(nil, registry, cfg.VersePageSize, log).Prepare(loaderOptions(cfg))
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"run_id":         batch.Report.RunID,
			"verses":         len(batch.Verses),
			"verses_skipped": batch.Report.VersesSkipped,
			"talks":          len(batch.Talks),
			"speakers":       batch.Speakers.Speakers(),
			"skipped_files":  batch.Report.SkippedFiles,
		})
		return nil
	}

	fmt.Printf("Verses:   %s (%s without verse_id)\n",
		humanize.Comma(int64(len(batch.Verses))), humanize.Comma(int64(batch.Report.VersesSkipped)))
	fmt.Printf("Talks:    %s\n", humanize.Comma(int64(len(batch.Talks))))
	fmt.Printf("Speakers: %s\n", humanize.Comma(int64(batch.Speakers.Len())))
	for _, sp := range batch.Speakers.Speakers() {
		headshot := ""
		if sp.HasHeadshot() {
			headshot = " [headshot]"
		}
		fmt.Printf("  %-32s %s%s\n", sp.NameSlug, sp.Name, headshot)
	}
	if n := len(batch.Report.SkippedFiles); n > 0 {
		fmt.Printf("Skipped files (%d):\n", n)
		for _, f := range batch.Report.SkippedFiles {
			fmt.Printf("  %s: %s\n", f.Path, f.Reason)
		}
	}
	return nil
}

func runSlug(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	registry, err := headshotRegistry(cfg)
	if err != nil {
		return err
	}

	type Result struct {
		Name     string `json:"name"`
		Slug     string `json:"slug"`
		Portrait string `json:"headshot_portrait,omitempty"`
		Square   string `json:"headshot_square,omitempty"`
	}

	results := make([]Result, 0, len(args))
	for _, name := range args {
		r := Result{Name: name, Slug: speakers.Slug(name)}
		r.Portrait, r.Square = registry.URLs(r.Slug)
		results = append(results, r)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}
	for _, r := range results {
		fmt.Printf("%s -> %q\n", r.Name, r.Slug)
		if r.Square != "" {
			fmt.Printf("  portrait: %s\n  square:   %s\n", r.Portrait, r.Square)
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := db.InitPostgres(cmd.Context(), ""); err != nil {
		return err
	}
	defer db.ClosePostgres()

	totals, err := postgres.NewStatsRepository(db.GetPostgres()).Totals(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(totals)
		return nil
	}
	fmt.Printf("Scriptures (verses): %s\n", humanize.Comma(totals.Verses))
	fmt.Printf("Talks:               %s\n", humanize.Comma(totals.Talks))
	fmt.Printf("Speakers:            %s\n", humanize.Comma(totals.Speakers))
	fmt.Printf("  with headshots:    %s\n", humanize.Comma(totals.SpeakersWithHeadshots))
	return nil
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}
