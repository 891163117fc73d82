package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/friidrett-stats/internal/store"
)

// OutputFormat specifies the inspect output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// InspectResult is the full database report produced by the inspect command.
type InspectResult struct {
	CheckedAt     time.Time                `json:"checked_at"`
	BySourceType  []store.SourceTypeCount  `json:"by_source_type"`
	Coverage      store.Coverage           `json:"coverage"`
	Nationalities []store.NationalityCount `json:"nationalities"`
	Sources       []store.SourceEntry      `json:"sources,omitempty"`
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report row counts, coverage and the sources catalog",
		RunE:  runInspect,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	result := &InspectResult{CheckedAt: time.Now().UTC()}
	if result.BySourceType, err = st.ResultsBySourceType(); err != nil {
		return err
	}
	if result.Coverage, err = st.ResultCoverage(); err != nil {
		return err
	}
	if result.Nationalities, err = st.AthletesByNationality(); err != nil {
		return err
	}
	if flagVerbose {
		if result.Sources, err = st.Sources(); err != nil {
			return err
		}
	}

	return WriteInspect(os.Stdout, result, format)
}

// WriteInspect writes the report in the specified format.
func WriteInspect(w io.Writer, result *InspectResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeInspectText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeInspectText(w io.Writer, result *InspectResult) error {
	if result.Coverage.Results == 0 {
		fmt.Fprintln(w, "No results in the database.")
		return nil
	}

	fmt.Fprintln(w, "Results by source:")
	for _, sc := range result.BySourceType {
		fmt.Fprintf(w, "  %-10s %7d rows across %d seasons\n", sc.SourceType, sc.Rows, sc.Seasons)
	}

	c := result.Coverage
	fmt.Fprintf(w, "\nCoverage of %d results:\n", c.Results)
	fmt.Fprintf(w, "  club       %s\n", pct(c.WithClub, c.Results))
	fmt.Fprintf(w, "  wind       %s\n", pct(c.WithWind, c.Results))
	fmt.Fprintf(w, "  date       %s\n", pct(c.WithDate, c.Results))
	fmt.Fprintf(w, "  points     %s\n", pct(c.WithPoints, c.Results))
	fmt.Fprintf(w, "  birth date %s\n", pct(c.WithBirth, c.Results))

	fmt.Fprintln(w, "\nAthletes by nationality:")
	for i, nc := range result.Nationalities {
		if i >= 10 {
			fmt.Fprintf(w, "  ... and %d more\n", len(result.Nationalities)-i)
			break
		}
		label := nc.Nationality
		if label == "" {
			label = "(unset)"
		}
		fmt.Fprintf(w, "  %-8s %6d\n", label, nc.Athletes)
	}

	if len(result.Sources) > 0 {
		fmt.Fprintln(w, "\nSources catalog:")
		for _, src := range result.Sources {
			fmt.Fprintf(w, "  %d %-6s %-8s %5d rows  %s\n",
				src.Season, src.Gender, src.SourceType, src.RowCount, src.URL)
		}
	}
	return nil
}

func pct(part, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", part, total, 100*float64(part)/float64(total))
}
