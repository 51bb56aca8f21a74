package speakers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultHeadshotSlugs are the speakers with published portrait assets
var defaultHeadshotSlugs = []string{
	"aldred-kyungu", "amy-wright", "andrea-spannaus", "camille-johnson",
	"christopher-waddell", "dale-renlund", "dallin-oaks", "david-bednar",
	"dieterf-uchtdorf", "edward-dube", "emily-freeman", "gary-stevenson",
	"gerald-causse", "gerrit-gong", "henry-eyring", "hugo-martinez",
	"j-anette-dennis", "joaquin-costa", "kristin-lee", "neil-andersen",
	"patrick-kearon", "quentin-cook", "ronald-rasband", "russell-nelson",
	"susan-porter", "tamara-runia", "todd-christofferson", "tracy-browning",
	"ulisses-soares",
}

// DefaultHeadshotSlugs returns a copy of the built-in known-asset set
func DefaultHeadshotSlugs() []string {
	out := make([]string, len(defaultHeadshotSlugs))
	copy(out, defaultHeadshotSlugs)
	return out
}

// RegistryFile is the YAML shape of an externally curated known-asset set
type RegistryFile struct {
	BaseURL  string   `yaml:"base_url"`
	Speakers []string `yaml:"speakers"`
}

// Registry maps speaker slugs to portrait asset URLs
type Registry struct {
	baseURL   string
	known     map[string]struct{}
	ordered   []string
	exactOnly bool
}

// NewRegistry builds a registry over slugs. With exactOnly the substring
// fallback is disabled.
func NewRegistry(baseURL string, slugs []string, exactOnly bool) *Registry {
	r := &Registry{
		baseURL:   strings.TrimRight(baseURL, "/"),
		known:     make(map[string]struct{}, len(slugs)),
		exactOnly: exactOnly,
	}
	for _, s := range slugs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := r.known[s]; dup {
			continue
		}
		r.known[s] = struct{}{}
		r.ordered = append(r.ordered, s)
	}
	// Longest entry first, then lexical, so the fuzzy match is deterministic
	// and prefers the most specific asset.
	sort.Slice(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i], r.ordered[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return r
}

// LoadRegistry reads a YAML registry file. An empty path yields the built-in
// set. A base_url in the file overrides baseURL.
func LoadRegistry(path, baseURL string, exactOnly bool) (*Registry, error) {
	if path == "" {
		return NewRegistry(baseURL, defaultHeadshotSlugs, exactOnly), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read headshot registry: %w", err)
	}
	var file RegistryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse headshot registry: %w", err)
	}
	if file.BaseURL != "" {
		baseURL = file.BaseURL
	}
	return NewRegistry(baseURL, file.Speakers, exactOnly), nil
}

// Len returns the number of known slugs
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Match returns the known asset slug for slug: an exact member first, then
// the first member that contains slug or is contained by it.
func (r *Registry) Match(slug string) (string, bool) {
	if r == nil || slug == "" {
		return "", false
	}
	if _, ok := r.known[slug]; ok {
		return slug, true
	}
	if r.exactOnly {
		return "", false
	}
	for _, known := range r.ordered {
		if strings.Contains(slug, known) || strings.Contains(known, slug) {
			return known, true
		}
	}
	return "", false
}

// URLs returns the portrait and square asset URLs for slug, or empty strings
// when no known asset matches.
func (r *Registry) URLs(slug string) (portrait, square string) {
	known, ok := r.Match(slug)
	if !ok {
		return "", ""
	}
	return fmt.Sprintf("%s/%s-portrait.webp", r.baseURL, known),
		fmt.Sprintf("%s/%s-square.webp", r.baseURL, known)
}
