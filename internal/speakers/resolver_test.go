package speakers

import (
	"testing"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	existing := models.Speaker{Name: "Dallin H. Oaks", NameSlug: "dallin-oaks"}

	enriched := Merge(existing, models.Speaker{Name: "Elder Dallin H. Oaks", NameSlug: "dallin-oaks", Calling: "President"})
	assert.Equal(t, "Dallin H. Oaks", enriched.Name)
	assert.Equal(t, "President", enriched.Calling)

	kept := Merge(enriched, models.Speaker{Name: "Dallin Oaks", NameSlug: "dallin-oaks", Calling: ""})
	assert.Equal(t, "President", kept.Calling)

	again := Merge(kept, kept)
	assert.Equal(t, kept, again)
}

func TestMergeHeadshots(t *testing.T) {
	existing := models.Speaker{NameSlug: "x", HeadshotPortrait: "p", HeadshotSquare: "s"}
	merged := Merge(existing, models.Speaker{NameSlug: "x"})
	assert.Equal(t, "p", merged.HeadshotPortrait)
	assert.Equal(t, "s", merged.HeadshotSquare)

	merged = Merge(models.Speaker{NameSlug: "x"}, existing)
	assert.Equal(t, "p", merged.HeadshotPortrait)
	assert.True(t, merged.HasHeadshot())
}

func TestMergeFillsEmptyName(t *testing.T) {
	merged := Merge(models.Speaker{NameSlug: "x"}, models.Speaker{Name: "X", NameSlug: "x"})
	assert.Equal(t, "X", merged.Name)
}

func TestResolverDeduplicates(t *testing.T) {
	r := NewResolver(NewRegistry(testBaseURL, DefaultHeadshotSlugs(), false))

	a := r.Resolve("Dallin H. Oaks", "")
	b := r.Resolve("Elder Dallin H. Oaks", "First Counselor in the First Presidency")
	c := r.Resolve("President Dallin H. Oaks", "")
	assert.Equal(t, "dallin-oaks", a)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	require.Equal(t, 1, r.Len())

	sp, ok := r.Speaker("dallin-oaks")
	require.True(t, ok)
	assert.Equal(t, "Dallin H. Oaks", sp.Name)
	assert.Equal(t, "First Counselor in the First Presidency", sp.Calling)
	assert.Equal(t, testBaseURL+"/dallin-oaks-portrait.webp", sp.HeadshotPortrait)
	assert.Equal(t, testBaseURL+"/dallin-oaks-square.webp", sp.HeadshotSquare)
}

func TestResolverOrderAndUnresolvable(t *testing.T) {
	r := NewResolver(nil)
	r.Resolve("Henry B. Eyring", "")
	r.Resolve("Neil L. Andersen", "")
	r.Resolve("Elder Henry B. Eyring", "")
	assert.Equal(t, "", r.Resolve("...", ""))

	got := r.Speakers()
	require.Len(t, got, 2)
	assert.Equal(t, "henry-eyring", got[0].NameSlug)
	assert.Equal(t, "neil-andersen", got[1].NameSlug)
	assert.False(t, got[0].HasHeadshot())
}
