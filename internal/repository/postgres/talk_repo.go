package postgres

import (
	"context"
	"fmt"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/conference-corpus-loader/internal/repository"
	"github.com/jmoiron/sqlx"
)

// Talks are write-once: an existing talk_id is never updated.
const insertTalkSQL = `
	INSERT INTO talks
	(talk_id, decimal_id, speaker_id, title, conference, session, kicker, content, paragraphs, source_url)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (talk_id) DO NOTHING
`

// TalkRepository implements repository.TalkRepository for PostgreSQL
type TalkRepository struct {
	db sqlx.ExtContext
}

// NewTalkRepository creates a new PostgreSQL talk repository
func NewTalkRepository(db sqlx.ExtContext) repository.TalkRepository {
	return &TalkRepository{db: db}
}

// InsertTalk reports whether a new row was written
func (r *TalkRepository) InsertTalk(ctx context.Context, talk models.Talk, speakerID *int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(insertTalkSQL),
		talk.TalkID,
		nullableInt(talk.DecimalID),
		nullableInt(speakerID),
		talk.Title,
		talk.Conference,
		talk.Session,
		talk.Kicker,
		talk.Content,
		nullableString(talk.Paragraphs),
		talk.SourceURL,
	)
	if err != nil {
		return false, fmt.Errorf("insert talk %s: %w", talk.TalkID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("count inserted talk %s: %w", talk.TalkID, err)
	}
	return n > 0, nil
}

func nullableInt(n *int64) interface{} {
	if n == nil {
		return nil
	}
	return *n
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
