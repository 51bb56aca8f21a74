package services

import (
	"bytes"
	"testing"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, &models.LoadReport{
		VersesAttempted: 41995,
		VersesInserted:  41995,
		TalksProcessed:  2,
		TalksInserted:   1,
		UnlinkedTalks:   []string{"anon"},
		SkippedFiles:    []models.SkippedFile{{Path: "talks/2024-A/bad.json", Reason: "parse talk json: EOF"}},
		Totals:          &models.StoreTotals{Verses: 41995, Talks: 1200, Speakers: 310, SpeakersWithHeadshots: 29},
	})

	out := buf.String()
	assert.Contains(t, out, "Scriptures (verses): 41,995")
	assert.Contains(t, out, "Talks:               1,200")
	assert.Contains(t, out, "  with headshots:    29")
	assert.Contains(t, out, "Talks without speaker: anon")
	assert.Contains(t, out, "talks/2024-A/bad.json: parse talk json: EOF")
}

func TestWriteSummaryWithoutTotals(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, &models.LoadReport{VersesAttempted: 3})

	out := buf.String()
	assert.Contains(t, out, "LOAD COMPLETE")
	assert.Contains(t, out, "This run: 0/3 verses inserted")
	assert.NotContains(t, out, "Scriptures (verses)")
	assert.NotContains(t, out, "Skipped files")
}
