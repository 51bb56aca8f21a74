package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// paragraphSeparator joins reconstructed paragraph lists into one body
const paragraphSeparator = "\n\n"

type rawRecord map[string]json.RawMessage

func parseRecord(data []byte) (rawRecord, error) {
	var rec rawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = rawRecord{}
	}
	return rec, nil
}

// fieldSource reads one historically used key and converts it to a flat string
type fieldSource struct {
	key     string
	extract func(json.RawMessage) string
}

// field is an ordered list of sources for one canonical field.
// The first source producing a non-blank value wins.
type field []fieldSource

func (f field) resolve(rec rawRecord) string {
	for _, src := range f {
		raw, ok := rec[src.key]
		if !ok {
			continue
		}
		if v := src.extract(raw); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Canonical talk fields and the legacy keys they are read from, in priority order.
var (
	talkIDField     = field{{"talk_id", flatValue}, {"hex_id", flatValue}, {"id", flatValue}}
	speakerField    = field{{"speaker", flatValue}, {"expected_speaker", flatValue}}
	callingField    = field{{"calling", flatValue}}
	titleField      = field{{"title", flatValue}, {"expected_title", flatValue}}
	sessionField    = field{{"session_info", flatValue}, {"session", flatValue}}
	kickerField     = field{{"kicker", flatValue}}
	contentField    = field{{"content", flatValue}, {"full_text", flatValue}, {"paragraphs", joinParagraphs}}
	sourceURLField  = field{{"source_url", flatValue}, {"api_url", flatValue}, {"ajax_url", flatValue}}
	conferenceField = field{{"conference", flatValue}}
)

// flatValue renders any JSON value as a flat string. Strings are unquoted,
// numbers and booleans keep their literal form, objects and arrays become
// compact JSON, null becomes empty.
func flatValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return ""
		}
		return buf.String()
	case 'n':
		return ""
	default:
		return string(trimmed)
	}
}

// joinParagraphs rebuilds a talk body from a list of paragraph strings or
// paragraph objects carrying a "text" field.
func joinParagraphs(raw json.RawMessage) string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		var text string
		switch item[0] {
		case '"':
			text = flatValue(item)
		case '{':
			var obj rawRecord
			if err := json.Unmarshal(item, &obj); err != nil {
				continue
			}
			text = flatValue(obj["text"])
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, paragraphSeparator)
}

// serializedParagraphs returns the compact JSON of a non-empty paragraphs value
func serializedParagraphs(rec rawRecord) *string {
	raw := bytes.TrimSpace(rec["paragraphs"])
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil
	}
	s := buf.String()
	switch s {
	case "null", `""`, "[]", "{}", "false", "0":
		return nil
	}
	return &s
}

// decimalID reads the secondary numeric identifier from a number or numeric string
func decimalID(rec rawRecord) *int64 {
	raw, ok := rec["decimal_id"]
	if !ok {
		return nil
	}
	if n, ok := parseInt(raw); ok {
		return &n
	}
	return nil
}

// parseInt accepts an integer, an integral float, or either one as a string
func parseInt(raw json.RawMessage) (int64, bool) {
	s := strings.TrimSpace(flatValue(raw))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), true
	}
	return 0, false
}

// looseInt decodes like parseInt; values that are not integers decode to 0
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	v, _ := parseInt(data)
	*n = looseInt(v)
	return nil
}
