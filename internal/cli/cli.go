package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/friidrett-stats/internal/fetch"
	"github.com/pfrederiksen/friidrett-stats/internal/ingest"
	"github.com/pfrederiksen/friidrett-stats/internal/logger"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
	"github.com/pfrederiksen/friidrett-stats/internal/scoring"
	"github.com/pfrederiksen/friidrett-stats/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDB        string
	flagScoringDB string
	flagCacheDir  string
	flagDataDir   string
	flagYears     string
	flagGender    string
	flagFormat    string
	flagDelay     time.Duration
	flagRefresh   bool
	flagVerbose   bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friidrett-stats",
		Short: "Sync and inspect Norwegian athletics season lists",
		Long: `A CLI tool that builds a local results database from the national
track-and-field season lists, the road-running year lists and transcribed
archive files, scoring every performance against the points tables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDB, "db", "data/friidrett.db", "Results database path")
	cmd.PersistentFlags().StringVar(&flagScoringDB, "scoring-db", "data/scoring.db", "Scoring tables database path")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSyncCmd(), newSyncLegacyCmd(), newSyncRoadCmd(), newSyncArchiveCmd(), newFillClubsCmd(), newInspectCmd())
	return cmd
}

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagYears, "years", "", "Seasons to sync, e.g. 2015, 2008,2010 or 1997-2025 (required)")
	cmd.Flags().StringVar(&flagGender, "gender", "", "Restrict to one gender: men or women")
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", ".cache/pages", "Page cache directory")
	cmd.Flags().DurationVar(&flagDelay, "delay", ingest.DefaultPoliteDelay, "Pause between live page fetches")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Ignore cached pages and refetch")
	cmd.MarkFlagRequired("years")
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the track-and-field national lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, func(s *ingest.Syncer, years []int, g record.Gender) (ingest.Summary, error) {
				return s.SyncTrack(cmd.Context(), years, g)
			})
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func newSyncLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-legacy",
		Short: "Sync only the curated federation pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, func(s *ingest.Syncer, years []int, g record.Gender) (ingest.Summary, error) {
				return s.SyncLegacy(cmd.Context(), years, g)
			})
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func newSyncRoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-road",
		Short: "Sync the road-running year lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, func(s *ingest.Syncer, years []int, g record.Gender) (ingest.Summary, error) {
				return s.SyncRoad(cmd.Context(), years, g)
			})
		},
	}
	addSyncFlags(cmd)
	return cmd
}

func newSyncArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-archive",
		Short: "Sync the transcribed archive season files",
		RunE:  runSyncArchive,
	}
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "old_data", "Directory holding the transcribed season files")
	cmd.Flags().StringVar(&flagYears, "years", "", "Seasons to sync, e.g. 1997 or 1960-1996 (required)")
	cmd.MarkFlagRequired("years")
	return cmd
}

func newFillClubsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill-clubs",
		Short: "Back-fill missing club references from the same athlete and season",
		RunE:  runFillClubs,
	}
}

// runSync wires up the common sync dependencies and runs one orchestrator.
func runSync(cmd *cobra.Command, fn func(*ingest.Syncer, []int, record.Gender) (ingest.Summary, error)) error {
	years, err := parseYears(flagYears)
	if err != nil {
		return err
	}
	gender, err := parseGender(flagGender)
	if err != nil {
		return err
	}

	calc, err := scoring.Open(flagScoringDB)
	if err != nil {
		return fmt.Errorf("opening scoring database: %w", err)
	}
	defer calc.Close()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	fetcher := fetch.New(flagCacheDir, flagRefresh)
	syncer := ingest.New(st, calc, fetcher, flagDelay)

	start := time.Now()
	sum, err := fn(syncer, years, gender)
	if err != nil {
		return err
	}
	logger.RecordTiming("sync.run", time.Since(start))
	logger.Info("sync finished", sum.Fields())

	fmt.Printf("Synced %d pages: %d rows seen, %d inserted (points ok %d, failed %d, missing %d)\n",
		sum.Pages, sum.RowsSeen, sum.RowsInserted, sum.PointsOK, sum.PointsFailed, sum.PointsMissing)
	return nil
}

func runSyncArchive(cmd *cobra.Command, args []string) error {
	years, err := parseYears(flagYears)
	if err != nil {
		return err
	}

	calc, err := scoring.Open(flagScoringDB)
	if err != nil {
		return fmt.Errorf("opening scoring database: %w", err)
	}
	defer calc.Close()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := ingest.New(st, calc, nil, 0).SyncArchive(flagDataDir, years)
	if err != nil {
		return err
	}
	logger.Info("archive sync finished", sum.Fields())

	fmt.Printf("Synced %d seasons: %d rows seen, %d inserted (points ok %d, failed %d, missing %d)\n",
		sum.Pages, sum.RowsSeen, sum.RowsInserted, sum.PointsOK, sum.PointsFailed, sum.PointsMissing)
	return nil
}

func runFillClubs(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.FillClubGaps()
	if err != nil {
		return err
	}
	fmt.Printf("Filled club references on %d results\n", n)
	return nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(flagDB)
	if err != nil {
		return nil, err
	}
	if err := st.Init(); err != nil {
		st.Close()
		return nil, fmt.Errorf("initializing results database: %w", err)
	}
	return st, nil
}

// parseYears accepts a single year, a comma list or an inclusive range.
func parseYears(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("--years is required")
	}

	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if from, to, ok := strings.Cut(part, "-"); ok {
			lo, err := parseYear(from)
			if err != nil {
				return nil, err
			}
			hi, err := parseYear(to)
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, fmt.Errorf("invalid year range: %s", part)
			}
			for y := lo; y <= hi; y++ {
				years = append(years, y)
			}
			continue
		}
		y, err := parseYear(part)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}

	seen := make(map[int]bool, len(years))
	out := years[:0]
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out, nil
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1800 || y > 2100 {
		return 0, fmt.Errorf("invalid year: %q", s)
	}
	return y, nil
}

func parseGender(s string) (record.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "men", "menn", "m":
		return record.Men, nil
	case "women", "kvinner", "k", "w":
		return record.Women, nil
	}
	return "", fmt.Errorf("invalid gender: %q (use men or women)", s)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
