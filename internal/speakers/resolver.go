package speakers

import (
	"strings"

	"github.com/conference-corpus-loader/internal/models"
)

// Merge folds a repeated observation of one speaker into the existing entry.
// Non-empty incoming calling and headshot values replace existing ones; empty
// incoming values never clear them. The display name stays as first seen.
func Merge(existing, incoming models.Speaker) models.Speaker {
	merged := existing
	if merged.NameSlug == "" {
		merged.NameSlug = incoming.NameSlug
	}
	if strings.TrimSpace(merged.Name) == "" {
		merged.Name = incoming.Name
	}
	merged.Calling = prefer(incoming.Calling, existing.Calling)
	merged.HeadshotPortrait = prefer(incoming.HeadshotPortrait, existing.HeadshotPortrait)
	merged.HeadshotSquare = prefer(incoming.HeadshotSquare, existing.HeadshotSquare)
	return merged
}

func prefer(incoming, existing string) string {
	if strings.TrimSpace(incoming) != "" {
		return incoming
	}
	return existing
}

// Resolver collects the distinct speakers referenced by one load run
type Resolver struct {
	headshots *Registry
	speakers  map[string]models.Speaker
	order     []string
}

// NewResolver creates a resolver; headshots may be nil
func NewResolver(headshots *Registry) *Resolver {
	return &Resolver{
		headshots: headshots,
		speakers:  make(map[string]models.Speaker),
	}
}

// Resolve registers an observation of name and returns its slug. An empty
// slug means the name could not be resolved to an identity.
func (r *Resolver) Resolve(name, calling string) string {
	slug := Slug(name)
	if slug == "" {
		return ""
	}

	portrait, square := r.headshots.URLs(slug)
	incoming := models.Speaker{
		Name:             strings.TrimSpace(name),
		NameSlug:         slug,
		Calling:          strings.TrimSpace(calling),
		HeadshotPortrait: portrait,
		HeadshotSquare:   square,
	}

	if existing, ok := r.speakers[slug]; ok {
		r.speakers[slug] = Merge(existing, incoming)
		return slug
	}
	r.speakers[slug] = incoming
	r.order = append(r.order, slug)
	return slug
}

// Speaker returns the merged entry for slug
func (r *Resolver) Speaker(slug string) (models.Speaker, bool) {
	s, ok := r.speakers[slug]
	return s, ok
}

// Speakers returns every resolved speaker in first-seen order
func (r *Resolver) Speakers() []models.Speaker {
	out := make([]models.Speaker, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.speakers[slug])
	}
	return out
}

// Len returns the number of distinct speakers
func (r *Resolver) Len() int {
	return len(r.order)
}
