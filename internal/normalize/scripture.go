package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conference-corpus-loader/internal/models"
)

type chapterFile struct {
	Metadata struct {
		Volume        string   `json:"volume"`
		VolumeAbbr    string   `json:"volume_abbr"`
		BookID        looseInt `json:"book_id"`
		BookName      string   `json:"book_name"`
		BookAbbr      string   `json:"book_abbr"`
		ChapterNumber looseInt `json:"chapter_number"`
	} `json:"metadata"`
	ChapterContent struct {
		Verses []struct {
			VerseNumber looseInt `json:"verse_number"`
			VerseID     string   `json:"verse_id"`
			VerseText   string   `json:"verse_text"`
			WordCount   looseInt `json:"word_count"`
		} `json:"verses"`
	} `json:"chapter_content"`
}

// Chapter converts one chapter file into canonical verses. volumeDir is the
// per-volume directory name, used when the file carries no volume abbreviation.
// Verses without an identifier cannot be keyed and are counted in skipped.
func Chapter(data []byte, volumeDir string) (verses []models.Verse, skipped int, err error) {
	var chapter chapterFile
	if err := json.Unmarshal(data, &chapter); err != nil {
		return nil, 0, fmt.Errorf("parse chapter json: %w", err)
	}

	meta := chapter.Metadata
	volumeAbbr := meta.VolumeAbbr
	if volumeAbbr == "" {
		volumeAbbr = volumeDir
	}

	verses = make([]models.Verse, 0, len(chapter.ChapterContent.Verses))
	for _, v := range chapter.ChapterContent.Verses {
		if strings.TrimSpace(v.VerseID) == "" {
			skipped++
			continue
		}
		verses = append(verses, models.Verse{
			Volume:        meta.Volume,
			VolumeAbbr:    volumeAbbr,
			BookID:        int(meta.BookID),
			BookName:      meta.BookName,
			BookAbbr:      meta.BookAbbr,
			ChapterNumber: int(meta.ChapterNumber),
			VerseNumber:   int(v.VerseNumber),
			VerseID:       v.VerseID,
			VerseText:     v.VerseText,
			WordCount:     int(v.WordCount),
		})
	}
	return verses, skipped, nil
}
