package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTalkContentVariants(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"content field", `{"content": "First.\n\nSecond."}`, "First.\n\nSecond."},
		{"full_text field", `{"full_text": "First.\n\nSecond."}`, "First.\n\nSecond."},
		{"paragraph strings", `{"paragraphs": ["First.", "Second."]}`, "First.\n\nSecond."},
		{"paragraph objects", `{"paragraphs": [{"text": "First."}, {"text": "Second.", "id": "p2"}]}`, "First.\n\nSecond."},
		{"content wins over full_text", `{"content": "A", "full_text": "B"}`, "A"},
		{"empty content falls through", `{"content": "", "full_text": "B"}`, "B"},
		{"blank content falls through", `{"content": "   ", "paragraphs": ["P"]}`, "P"},
		{"nothing present", `{"title": "x"}`, ""},
		{"empty paragraphs", `{"paragraphs": []}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talk, err := Talk([]byte(tt.json), "talks/2024-A/abc.json", "2024-A")
			require.NoError(t, err)
			assert.Equal(t, tt.want, talk.Content)
		})
	}
}

func TestParagraphObjectsMatchFlatContent(t *testing.T) {
	flat, err := Talk([]byte(`{"content": "Faith.\n\nHope."}`), "a.json", "2024-A")
	require.NoError(t, err)
	objs, err := Talk([]byte(`{"paragraphs": [{"text": "Faith."}, {"text": "Hope."}]}`), "b.json", "2024-A")
	require.NoError(t, err)
	assert.Equal(t, flat.Content, objs.Content)
}

func TestTalkIdentifierFallbacks(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"talk_id", `{"talk_id": "21b4", "hex_id": "ffff", "id": "x"}`, "21b4"},
		{"hex_id", `{"hex_id": "219b", "id": "x"}`, "219b"},
		{"id", `{"id": "x"}`, "x"},
		{"numeric id", `{"id": 8603}`, "8603"},
		{"empty talk_id skipped", `{"talk_id": "", "hex_id": "219c"}`, "219c"},
		{"filename stem", `{}`, "21a0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talk, err := Talk([]byte(tt.json), "/data/talks/2022-O/21a0.json", "2022-O")
			require.NoError(t, err)
			assert.Equal(t, tt.want, talk.TalkID)
		})
	}
}

func TestTalkFlattensStructuredFields(t *testing.T) {
	data := `{
		"talk_id": "1",
		"session": {"name": "Saturday Morning", "order": 1},
		"kicker": {"text": "Be still"},
		"title": "T"
	}`
	talk, err := Talk([]byte(data), "1.json", "2024-O")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Saturday Morning","order":1}`, talk.Session)
	assert.Equal(t, `{"text":"Be still"}`, talk.Kicker)
}

func TestTalkFieldChains(t *testing.T) {
	data := `{
		"hex_id": "219b",
		"decimal_id": 8603,
		"expected_speaker": "Dallin H. Oaks",
		"expected_title": "Helping the Poor",
		"session_info": "Saturday Morning",
		"session": "ignored",
		"calling": " President of the Quorum ",
		"api_url": "https://example.org/api/8603",
		"ajax_url": "https://example.org/ajax/8603",
		"paragraphs": [{"text": "One."}]
	}`
	talk, err := Talk([]byte(data), "219b.json", "2022-O")
	require.NoError(t, err)
	assert.Equal(t, "Dallin H. Oaks", talk.SpeakerName)
	assert.Equal(t, "Helping the Poor", talk.Title)
	assert.Equal(t, "Saturday Morning", talk.Session)
	assert.Equal(t, "President of the Quorum", talk.Calling)
	assert.Equal(t, "https://example.org/api/8603", talk.SourceURL)
	assert.Equal(t, "October 2022", talk.Conference)
	require.NotNil(t, talk.DecimalID)
	assert.Equal(t, int64(8603), *talk.DecimalID)
	require.NotNil(t, talk.Paragraphs)
	assert.Equal(t, `[{"text":"One."}]`, *talk.Paragraphs)
}

func TestTalkDefaults(t *testing.T) {
	talk, err := Talk([]byte(`{"decimal_id": "not-a-number", "paragraphs": []}`), "x.json", "misc")
	require.NoError(t, err)
	assert.Equal(t, UnknownSpeaker, talk.SpeakerName)
	assert.Nil(t, talk.DecimalID)
	assert.Nil(t, talk.Paragraphs)
	assert.Equal(t, "misc", talk.Conference)
}

func TestTalkDecimalIDFromString(t *testing.T) {
	talk, err := Talk([]byte(`{"decimal_id": "8603"}`), "x.json", "2024-A")
	require.NoError(t, err)
	require.NotNil(t, talk.DecimalID)
	assert.Equal(t, int64(8603), *talk.DecimalID)
}

func TestTalkMalformedJSON(t *testing.T) {
	_, err := Talk([]byte(`{"talk_id": `), "bad.json", "2024-A")
	assert.Error(t, err)
}

func TestConferenceLabel(t *testing.T) {
	tests := []struct {
		folder, explicit, want string
	}{
		{"2024-A", "", "April 2024"},
		{"2024-O", "", "October 2024"},
		{"2024-A", "ignored", "April 2024"},
		{"special-devotional", "Christmas Devotional 2023", "Christmas Devotional 2023"},
		{"special-devotional", "", "special-devotional"},
		{"2024-X", "", "2024-X"},
		{"24-A", "", "24-A"},
		{"2024-April", "", "April 2024"},
		{"2023-October-extra", "", "October 2023"},
		{"x2024-A", "", "x2024-A"},
	}
	for _, tt := range tests {
		t.Run(tt.folder+"/"+tt.explicit, func(t *testing.T) {
			assert.Equal(t, tt.want, ConferenceLabel(tt.folder, tt.explicit))
		})
	}
}

func TestTalkConferenceFallsBackToField(t *testing.T) {
	talk, err := Talk([]byte(`{"conference": "April 2019"}`), "x.json", "archive")
	require.NoError(t, err)
	assert.Equal(t, "April 2019", talk.Conference)
}
