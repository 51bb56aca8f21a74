package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/conference-corpus-loader/internal/repository"
	"github.com/jmoiron/sqlx"
)

// DefaultVersePageSize is the number of verse rows written per statement
const DefaultVersePageSize = 1000

const verseInsertPrefix = `
	INSERT INTO scriptures
	(volume, volume_abbr, book_id, book_name, book_abbr, chapter_number,
	 verse_number, verse_id, verse_text, word_count)
	VALUES `

const verseRowPlaceholders = "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// VerseRepository implements repository.VerseRepository for PostgreSQL
type VerseRepository struct {
	db       sqlx.ExtContext
	pageSize int
}

// NewVerseRepository creates a verse repository writing pageSize rows per statement
func NewVerseRepository(db sqlx.ExtContext, pageSize int) repository.VerseRepository {
	if pageSize <= 0 {
		pageSize = DefaultVersePageSize
	}
	return &VerseRepository{db: db, pageSize: pageSize}
}

// InsertVerses writes verses in pages of multi-row inserts. Rows whose
// verse_id already exists are left untouched and not counted.
func (r *VerseRepository) InsertVerses(ctx context.Context, verses []models.Verse) (int64, error) {
	var inserted int64
	for start := 0; start < len(verses); start += r.pageSize {
		end := min(start+r.pageSize, len(verses))
		query, args := buildVerseInsert(verses[start:end])

		res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
		if err != nil {
			return inserted, fmt.Errorf("insert verses %d-%d: %w", start, end, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("count inserted verses: %w", err)
		}
		inserted += n
	}
	return inserted, nil
}

func buildVerseInsert(verses []models.Verse) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(verseInsertPrefix)

	args := make([]interface{}, 0, len(verses)*10)
	for i, v := range verses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(verseRowPlaceholders)
		args = append(args,
			v.Volume, v.VolumeAbbr, v.BookID, v.BookName, v.BookAbbr, v.ChapterNumber,
			v.VerseNumber, v.VerseID, v.VerseText, v.WordCount,
		)
	}
	b.WriteString(" ON CONFLICT (verse_id) DO NOTHING")
	return b.String(), args
}
