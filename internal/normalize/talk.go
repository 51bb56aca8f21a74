package normalize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/conference-corpus-loader/internal/models"
)

// UnknownSpeaker is used when a talk file names no speaker at all
const UnknownSpeaker = "Unknown"

var campaignPattern = regexp.MustCompile(`^(\d{4})-([AO])`)

// ConferenceLabel derives the human-readable conference from a campaign folder
// whose name starts with "<year>-<A|O>" ("2024-A", "2024-April"). Other folder
// names fall back to the explicit value, then to the folder name itself.
func ConferenceLabel(folder, explicit string) string {
	if m := campaignPattern.FindStringSubmatch(folder); m != nil {
		month := "October"
		if m[2] == "A" {
			month = "April"
		}
		return month + " " + m[1]
	}
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return folder
}

// Talk converts one raw talk file into the canonical record.
// path is the file path, used for the identifier fallback; campaign is the
// enclosing campaign folder name.
func Talk(data []byte, path, campaign string) (models.Talk, error) {
	rec, err := parseRecord(data)
	if err != nil {
		return models.Talk{}, fmt.Errorf("parse talk json: %w", err)
	}

	talkID := talkIDField.resolve(rec)
	if talkID == "" {
		talkID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	speaker := strings.TrimSpace(speakerField.resolve(rec))
	if speaker == "" {
		speaker = UnknownSpeaker
	}

	return models.Talk{
		TalkID:      talkID,
		DecimalID:   decimalID(rec),
		SpeakerName: speaker,
		Calling:     strings.TrimSpace(callingField.resolve(rec)),
		Title:       titleField.resolve(rec),
		Conference:  ConferenceLabel(campaign, conferenceField.resolve(rec)),
		Session:     sessionField.resolve(rec),
		Kicker:      kickerField.resolve(rec),
		Content:     contentField.resolve(rec),
		Paragraphs:  serializedParagraphs(rec),
		SourceURL:   sourceURLField.resolve(rec),
		SourcePath:  path,
	}, nil
}
