package speakers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugCollapsesNameVariants(t *testing.T) {
	variants := []string{
		"Elder Dallin H. Oaks",
		"Dallin Oaks",
		"President Dallin H. Oaks",
		"Dallin H. Oaks",
		"  dallin   OAKS. ",
		"ELDER Dallin Oaks",
		"Elder\u00a0Dallin H. Oaks",
		"Dallin H.\u00a0Oaks",
		"Dallin\u2003Oaks",
		"President\u00a0Dallin\u202fH.\u2009Oaks",
	}
	for _, name := range variants {
		assert.Equal(t, "dallin-oaks", Slug(name), name)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Russell M. Nelson", "russell-nelson"},
		{"Sister J. Anette Dennis", "j-anette-dennis"},
		{"Bishop Gérald Caussé", "gerald-causse"},
		{"D. Todd Christofferson", "d-todd-christofferson"},
		{"Jean-Luc O'Neil", "jean-luc-oneil"},
		{"Elderberry Smith", "elderberry-smith"},
		{"Elder President Quentin L. Cook", "quentin-cook"},
		{"James W. McConkie III", "james-mcconkie-iii"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.name))
		})
	}
}
