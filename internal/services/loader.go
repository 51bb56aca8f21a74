package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conference-corpus-loader/internal/corpus"
	"github.com/conference-corpus-loader/internal/logger"
	"github.com/conference-corpus-loader/internal/models"
	"github.com/conference-corpus-loader/internal/normalize"
	"github.com/conference-corpus-loader/internal/repository/postgres"
	"github.com/conference-corpus-loader/internal/speakers"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNoStore is returned when Load is called on a loader without a database
var ErrNoStore = errors.New("loader has no database")

// Options selects which parts of the input tree a run reads
type Options struct {
	DataDir        string
	ScripturesDir  string
	TalksDir       string
	SkipScriptures bool
	SkipTalks      bool
}

// Batch is the normalized, identity-resolved content of one run
type Batch struct {
	Verses   []models.Verse
	Talks    []models.Talk
	Speakers *speakers.Resolver
	Report   *models.LoadReport
}

// Loader runs the normalize, resolve and load pipeline
type Loader struct {
	db            *sqlx.DB
	headshots     *speakers.Registry
	versePageSize int
	log           *logger.Logger
}

// NewLoader creates a loader. db may be nil when only Prepare is used.
func NewLoader(db *sqlx.DB, headshots *speakers.Registry, versePageSize int, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		db:            db,
		headshots:     headshots,
		versePageSize: versePageSize,
		log:           log,
	}
}

// Run prepares and loads one batch
func (l *Loader) Run(ctx context.Context, opts Options) (*models.LoadReport, error) {
	batch, err := l.Prepare(opts)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, batch)
}

// Prepare normalizes every input file and resolves speaker identities. It
// touches no store. Unreadable or malformed files are recorded and skipped.
func (l *Loader) Prepare(opts Options) (*Batch, error) {
	batch := &Batch{
		Speakers: speakers.NewResolver(l.headshots),
		Report:   &models.LoadReport{RunID: uuid.NewString()},
	}
	log := l.log.With("run_id", batch.Report.RunID)

	if !opts.SkipScriptures {
		root := filepath.Join(opts.DataDir, opts.ScripturesDir)
		files, err := corpus.Scan(root)
		if err != nil {
			return nil, fmt.Errorf("scan scriptures: %w", err)
		}
		log.Info("normalizing scriptures", "dir", root, "files", len(files))
		for _, f := range files {
			l.prepareChapter(log, batch, f)
		}
	}

	if !opts.SkipTalks {
		root := filepath.Join(opts.DataDir, opts.TalksDir)
		files, err := corpus.Scan(root)
		if err != nil {
			return nil, fmt.Errorf("scan talks: %w", err)
		}
		log.Info("normalizing talks", "dir", root, "files", len(files))
		for _, f := range files {
			l.prepareTalk(log, batch, f)
		}
	}

	batch.Report.VersesAttempted = len(batch.Verses)
	batch.Report.TalksProcessed = len(batch.Talks)
	log.Info("normalized batch",
		"verses", len(batch.Verses),
		"talks", len(batch.Talks),
		"speakers", batch.Speakers.Len(),
		"skipped_files", len(batch.Report.SkippedFiles),
	)
	return batch, nil
}

func (l *Loader) prepareChapter(log *logger.Logger, batch *Batch, f corpus.File) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		skip(log, batch, f.Path, err)
		return
	}
	verses, skipped, err := normalize.Chapter(data, f.Group)
	if err != nil {
		skip(log, batch, f.Path, err)
		return
	}
	if skipped > 0 {
		log.Warn("verses without verse_id skipped", "file", f.Path, "count", skipped)
	}
	batch.Report.VersesSkipped += skipped
	batch.Verses = append(batch.Verses, verses...)
	log.Debug("normalized chapter", "file", f.Path, "verses", len(verses))
}

func (l *Loader) prepareTalk(log *logger.Logger, batch *Batch, f corpus.File) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		skip(log, batch, f.Path, err)
		return
	}
	talk, err := normalize.Talk(data, f.Path, f.Group)
	if err != nil {
		skip(log, batch, f.Path, err)
		return
	}
	talk.SpeakerSlug = batch.Speakers.Resolve(talk.SpeakerName, talk.Calling)
	batch.Talks = append(batch.Talks, talk)
	log.Debug("normalized talk", "file", f.Path, "talk_id", talk.TalkID, "speaker_slug", talk.SpeakerSlug)
}

func skip(log *logger.Logger, batch *Batch, path string, err error) {
	log.Warn("skipping file", "file", path, "error", err)
	batch.Report.SkippedFiles = append(batch.Report.SkippedFiles, models.SkippedFile{
		Path:   path,
		Reason: err.Error(),
	})
}

// Load writes a prepared batch in three committed phases: verses, speakers,
// then talks. A failed phase is rolled back and aborts the run; earlier
// phases stay committed. The returned report is filled up to the failure.
func (l *Loader) Load(ctx context.Context, batch *Batch) (*models.LoadReport, error) {
	if l.db == nil {
		return nil, ErrNoStore
	}
	report := batch.Report
	log := l.log.With("run_id", report.RunID)

	if len(batch.Verses) > 0 {
		err := l.inTx(ctx, "verses", func(tx *sqlx.Tx) error {
			n, err := postgres.NewVerseRepository(tx, l.versePageSize).InsertVerses(ctx, batch.Verses)
			report.VersesInserted = n
			return err
		})
		if err != nil {
			return report, err
		}
		log.Info("verses loaded", "attempted", len(batch.Verses), "inserted", report.VersesInserted)
	}

	speakerIDs := make(map[string]int64, batch.Speakers.Len())
	if batch.Speakers.Len() > 0 {
		err := l.inTx(ctx, "speakers", func(tx *sqlx.Tx) error {
			repo := postgres.NewSpeakerRepository(tx)
			for _, sp := range batch.Speakers.Speakers() {
				id, err := repo.UpsertSpeaker(ctx, sp)
				if err != nil {
					return err
				}
				speakerIDs[sp.NameSlug] = id
			}
			return nil
		})
		if err != nil {
			return report, err
		}
		report.SpeakersUpserted = len(speakerIDs)
		log.Info("speakers loaded", "upserted", report.SpeakersUpserted)
	}

	if len(batch.Talks) > 0 {
		var inserted int64
		var unlinked []string
		err := l.inTx(ctx, "talks", func(tx *sqlx.Tx) error {
			repo := postgres.NewTalkRepository(tx)
			for _, talk := range batch.Talks {
				var speakerID *int64
				if id, ok := speakerIDs[talk.SpeakerSlug]; ok && talk.SpeakerSlug != "" {
					speakerID = &id
				}
				ok, err := repo.InsertTalk(ctx, talk, speakerID)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				inserted++
				// only rows written by this run are reported
				if speakerID == nil {
					unlinked = append(unlinked, talk.TalkID)
					log.Warn("talk has no resolved speaker", "talk_id", talk.TalkID, "speaker", talk.SpeakerName)
				}
			}
			return nil
		})
		if err != nil {
			return report, err
		}
		report.TalksInserted = inserted
		report.UnlinkedTalks = unlinked
		log.Info("talks loaded", "processed", len(batch.Talks), "inserted", inserted)
	}

	totals, err := postgres.NewStatsRepository(l.db).Totals(ctx)
	if err != nil {
		return report, err
	}
	report.Totals = totals
	return report, nil
}

func (l *Loader) inTx(ctx context.Context, phase string, fn func(tx *sqlx.Tx) error) error {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s phase: %w", phase, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return fmt.Errorf("%s phase: %w", phase, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s phase: %w", phase, err)
	}
	return nil
}
