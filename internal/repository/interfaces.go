package repository

import (
	"context"

	"github.com/conference-corpus-loader/internal/models"
)

// VerseRepository defines append-only writes for scripture verses
type VerseRepository interface {
	// InsertVerses bulk inserts verses, ignoring already-present verse_ids.
	// Returns the number of rows actually inserted.
	InsertVerses(ctx context.Context, verses []models.Verse) (int64, error)
}

// SpeakerRepository defines the shared speaker registry
type SpeakerRepository interface {
	// UpsertSpeaker inserts or merges a speaker by name_slug and returns its row id
	UpsertSpeaker(ctx context.Context, speaker models.Speaker) (int64, error)

	// GetBySlug returns the stored speaker for slug
	GetBySlug(ctx context.Context, slug string) (*models.Speaker, error)
}

// TalkRepository defines write-once talk storage
type TalkRepository interface {
	// InsertTalk inserts a talk unless its talk_id is already present.
	// A nil speakerID stores the talk without a speaker reference.
	InsertTalk(ctx context.Context, talk models.Talk, speakerID *int64) (bool, error)
}

// StatsRepository reads row counts for the run summary
type StatsRepository interface {
	Totals(ctx context.Context) (*models.StoreTotals, error)
}
