package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/conference-corpus-loader/internal/repository"
	"github.com/jmoiron/sqlx"
)

// On conflict a non-empty incoming value replaces the stored one and an
// empty or NULL incoming value keeps it. The stored display name is kept.
const upsertSpeakerSQL = `
	INSERT INTO speakers (name, name_slug, calling, headshot_portrait, headshot_square)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (name_slug) DO UPDATE SET
		name = COALESCE(NULLIF(speakers.name, ''), EXCLUDED.name),
		calling = COALESCE(NULLIF(EXCLUDED.calling, ''), speakers.calling),
		headshot_portrait = COALESCE(NULLIF(EXCLUDED.headshot_portrait, ''), speakers.headshot_portrait),
		headshot_square = COALESCE(NULLIF(EXCLUDED.headshot_square, ''), speakers.headshot_square)
	RETURNING id
`

// SpeakerRepository implements repository.SpeakerRepository for PostgreSQL
type SpeakerRepository struct {
	db sqlx.ExtContext
}

// NewSpeakerRepository creates a new PostgreSQL speaker repository
func NewSpeakerRepository(db sqlx.ExtContext) repository.SpeakerRepository {
	return &SpeakerRepository{db: db}
}

// UpsertSpeaker inserts the speaker or merges it into the existing row
func (r *SpeakerRepository) UpsertSpeaker(ctx context.Context, speaker models.Speaker) (int64, error) {
	if speaker.NameSlug == "" {
		return 0, fmt.Errorf("upsert speaker %q: empty slug", speaker.Name)
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(upsertSpeakerSQL),
		speaker.Name,
		speaker.NameSlug,
		nullable(speaker.Calling),
		nullable(speaker.HeadshotPortrait),
		nullable(speaker.HeadshotSquare),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert speaker %s: %w", speaker.NameSlug, err)
	}
	return id, nil
}

// GetBySlug returns the stored speaker, or nil when no row has that slug
func (r *SpeakerRepository) GetBySlug(ctx context.Context, slug string) (*models.Speaker, error) {
	var row struct {
		Name             string  `db:"name"`
		NameSlug         string  `db:"name_slug"`
		Calling          *string `db:"calling"`
		HeadshotPortrait *string `db:"headshot_portrait"`
		HeadshotSquare   *string `db:"headshot_square"`
	}
	err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(`
		SELECT name, name_slug, calling, headshot_portrait, headshot_square
		FROM speakers
		WHERE name_slug = ?
	`), slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get speaker %s: %w", slug, err)
	}

	return &models.Speaker{
		Name:             row.Name,
		NameSlug:         row.NameSlug,
		Calling:          deref(row.Calling),
		HeadshotPortrait: deref(row.HeadshotPortrait),
		HeadshotSquare:   deref(row.HeadshotSquare),
	}, nil
}

// nullable maps an empty string to NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
