package resolve_city

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple lowercase", in: "lisbon", want: "lisbon"},
		{name: "capitalized", in: "Lisbon", want: "lisbon"},
		{name: "two words", in: "Buenos Aires", want: "buenos-aires"},
		{name: "accents dropped without transliteration", in: "São Paulo!", want: "so-paulo"},
		{name: "punctuation dropped", in: "St. John's", want: "st-johns"},
		{name: "hyphens are not preserved", in: "Winston-Salem", want: "winstonsalem"},
		{name: "multiple spaces collapse", in: "Rio   de   Janeiro", want: "rio-de-janeiro"},
		{name: "leading and trailing whitespace", in: "  Porto  ", want: "porto"},
		{name: "digits kept", in: "Area 51", want: "area-51"},
		{name: "tabs and newlines are whitespace", in: "Kuala\tLumpur\n", want: "kuala-lumpur"},
		{name: "fully non-latin name produces empty slug", in: "東京", want: ""},
		{name: "empty input", in: "", want: ""},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugFromName(tt.in))
		})
	}
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "springfield", slugCandidate("springfield", "US", 0))
	assert.Equal(t, "springfield-us", slugCandidate("springfield", "US", 1))
	assert.Equal(t, "springfield-us-2", slugCandidate("springfield", "US", 2))
	assert.Equal(t, "springfield-us-7", slugCandidate("springfield", "US", 7))
}
