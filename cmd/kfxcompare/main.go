package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"kfxcompare/internal/compare"
	"kfxcompare/internal/config"
	"kfxcompare/internal/dump"
	"kfxcompare/internal/history"
	"kfxcompare/internal/occurrence"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "kfxcompare",
		Short: "Compare structural property placement between two KFX debug dumps",
		Long: `kfxcompare checks that break-inside, yj-break and vertical margin
placement is applied to the same content in two independently generated
dumps, even though storyline and style ids are renumbered on every build.`,
	}
	dbPath  string
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Execute only fails on argument/flag errors; run errors exit inline.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the run history database (SQLite); empty disables recording")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the optional window configuration file")

	rootCmd.AddCommand(newCompareCmd("breakinside", "Compare break-inside: avoid placement",
		func(cfg *config.Config) occurrence.Family { return occurrence.BreakInside(cfg.Windows.BreakInside) }))
	rootCmd.AddCommand(newCompareCmd("yjbreak", "Compare yj-break-before/after: avoid placement",
		func(cfg *config.Config) occurrence.Family { return occurrence.YJBreak(cfg.Windows.YJBreak) }))
	rootCmd.AddCommand(newCompareCmd("margins", "Compare vertical margin values between margin tree dumps",
		func(cfg *config.Config) occurrence.Family { return occurrence.Margins(cfg.Windows.Margins) }))
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func newCompareCmd(use, short string, family func(*config.Config) occurrence.Family) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <ref-dump> <cand-dump>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			fam := family(cfg)

			refDump, err := dump.Load(args[0])
			if err != nil {
				log.Fatalf("Failed to read reference dump: %v", err)
			}
			candDump, err := dump.Load(args[1])
			if err != nil {
				log.Fatalf("Failed to read candidate dump: %v", err)
			}

			ref := occurrence.Extract(refDump, fam)
			cand := occurrence.Extract(candDump, fam)

			res := compare.Compare(ref, cand)
			fmt.Print(res.Render(fam.Name))

			recordRun(cfg, fam.Name, args[0], args[1], res)

			if !res.Verdict.Matched() {
				os.Exit(1)
			}
		},
	}
}

// recordRun stores the run summary when a history database is configured.
// Recording failures are warnings; they never change the comparison outcome.
func recordRun(cfg *config.Config, family, refPath, candPath string, res *compare.Result) {
	path := dbPath
	if path == "" {
		path = cfg.History.Path
	}
	if path == "" {
		return
	}

	store, err := history.Open(path)
	if err != nil {
		log.Printf("Warning: failed to open history database: %v", err)
		return
	}
	defer store.Close()

	rec := &history.RunRecord{
		StartedAt: time.Now().UTC(),
		Family:    family,
		RefPath:   refPath,
		CandPath:  candPath,
		Verdict:   res.Verdict.String(),
		RefCount:  res.RefCount,
		CandCount: res.CandCount,
		Missing:   len(res.Missing),
		Extra:     len(res.Extra),
	}
	if err := store.Record(context.Background(), rec); err != nil {
		log.Printf("Warning: failed to record run: %v", err)
	}
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent recorded comparison runs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		path := dbPath
		if path == "" {
			path = cfg.History.Path
		}
		if path == "" {
			log.Fatalf("No history database configured (use --db or the history.path config key)")
		}

		store, err := history.Open(path)
		if err != nil {
			log.Fatalf("Failed to open history database: %v", err)
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := store.Recent(context.Background(), limit)
		if err != nil {
			log.Fatalf("Failed to read history: %v", err)
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return
		}

		for _, r := range runs {
			fmt.Printf("%s %-11s %-14s ref=%d cand=%d missing=%d extra=%d %s vs %s\n",
				r.StartedAt.Format(time.RFC3339), r.Family, r.Verdict,
				r.RefCount, r.CandCount, r.Missing, r.Extra, r.RefPath, r.CandPath)
		}
	},
}
