package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/dustin/go-humanize"
)

// WriteSummary prints the end-of-run banner for report
func WriteSummary(w io.Writer, report *models.LoadReport) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "LOAD COMPLETE")
	fmt.Fprintln(w, rule)

	if t := report.Totals; t != nil {
		fmt.Fprintf(w, "Scriptures (verses): %s\n", humanize.Comma(t.Verses))
		fmt.Fprintf(w, "Talks:               %s\n", humanize.Comma(t.Talks))
		fmt.Fprintf(w, "Speakers:            %s\n", humanize.Comma(t.Speakers))
		fmt.Fprintf(w, "  with headshots:    %s\n", humanize.Comma(t.SpeakersWithHeadshots))
		fmt.Fprintln(w, rule)
	}

	fmt.Fprintf(w, "This run: %s/%s verses inserted, %s/%s talks inserted, %s speakers upserted\n",
		humanize.Comma(report.VersesInserted), humanize.Comma(int64(report.VersesAttempted)),
		humanize.Comma(report.TalksInserted), humanize.Comma(int64(report.TalksProcessed)),
		humanize.Comma(int64(report.SpeakersUpserted)),
	)
	if report.VersesSkipped > 0 {
		fmt.Fprintf(w, "Verses without verse_id: %s\n", humanize.Comma(int64(report.VersesSkipped)))
	}
	if len(report.UnlinkedTalks) > 0 {
		fmt.Fprintf(w, "Talks without speaker: %s\n", strings.Join(report.UnlinkedTalks, ", "))
	}
	if len(report.SkippedFiles) > 0 {
		fmt.Fprintf(w, "Skipped files (%d):\n", len(report.SkippedFiles))
		for _, f := range report.SkippedFiles {
			fmt.Fprintf(w, "  %s: %s\n", f.Path, f.Reason)
		}
	}
}
