package models

// Verse is one canonical scripture verse. VerseID is the natural key.
type Verse struct {
	Volume        string `json:"volume" db:"volume"`
	VolumeAbbr    string `json:"volume_abbr" db:"volume_abbr"`
	BookID        int    `json:"book_id" db:"book_id"`
	BookName      string `json:"book_name" db:"book_name"`
	BookAbbr      string `json:"book_abbr" db:"book_abbr"`
	ChapterNumber int    `json:"chapter_number" db:"chapter_number"`
	VerseNumber   int    `json:"verse_number" db:"verse_number"`
	VerseID       string `json:"verse_id" db:"verse_id"`
	VerseText     string `json:"verse_text" db:"verse_text"`
	WordCount     int    `json:"word_count" db:"word_count"`
}

// Speaker is one entry of the cross-batch speaker registry, keyed by NameSlug.
// Empty strings stand for absent values.
type Speaker struct {
	Name             string `json:"name" db:"name"`
	NameSlug         string `json:"name_slug" db:"name_slug"`
	Calling          string `json:"calling,omitempty" db:"calling"`
	HeadshotPortrait string `json:"headshot_portrait,omitempty" db:"headshot_portrait"`
	HeadshotSquare   string `json:"headshot_square,omitempty" db:"headshot_square"`
}

// HasHeadshot reports whether a portrait asset was resolved for the speaker
func (s Speaker) HasHeadshot() bool {
	return s.HeadshotSquare != "" || s.HeadshotPortrait != ""
}

// Talk is one canonical conference talk. TalkID is the natural key.
type Talk struct {
	TalkID      string  `json:"talk_id" db:"talk_id"`
	DecimalID   *int64  `json:"decimal_id,omitempty" db:"decimal_id"`
	SpeakerName string  `json:"speaker_name" db:"-"`
	SpeakerSlug string  `json:"speaker_slug" db:"-"`
	Calling     string  `json:"calling,omitempty" db:"-"`
	Title       string  `json:"title" db:"title"`
	Conference  string  `json:"conference" db:"conference"`
	Session     string  `json:"session" db:"session"`
	Kicker      string  `json:"kicker" db:"kicker"`
	Content     string  `json:"content" db:"content"`
	Paragraphs  *string `json:"paragraphs,omitempty" db:"paragraphs"`
	SourceURL   string  `json:"source_url" db:"source_url"`
	SourcePath  string  `json:"-" db:"-"`
}

// SkippedFile records an input file that could not be normalized
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// StoreTotals are row counts read back from the store after a run
type StoreTotals struct {
	Verses                int64 `json:"verses" db:"verses"`
	Talks                 int64 `json:"talks" db:"talks"`
	Speakers              int64 `json:"speakers" db:"speakers"`
	SpeakersWithHeadshots int64 `json:"speakers_with_headshots" db:"speakers_with_headshots"`
}

// LoadReport summarizes one load run
type LoadReport struct {
	RunID            string        `json:"run_id"`
	VersesAttempted  int           `json:"verses_attempted"`
	VersesInserted   int64         `json:"verses_inserted"`
	VersesSkipped    int           `json:"verses_skipped"`
	SpeakersUpserted int           `json:"speakers_upserted"`
	TalksProcessed   int           `json:"talks_processed"`
	TalksInserted    int64         `json:"talks_inserted"`
	UnlinkedTalks    []string      `json:"unlinked_talks,omitempty"`
	SkippedFiles     []SkippedFile `json:"skipped_files,omitempty"`
	Totals           *StoreTotals  `json:"totals,omitempty"`
}
