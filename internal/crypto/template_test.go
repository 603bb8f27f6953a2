package crypto

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTemplate(t *testing.T) {
	g := newTestGenerator(9)

	password := g.FromTemplate("UULLDDSSX")
	require.Len(t, password, 9)

	checks := []string{
		uppercaseChars, uppercaseChars,
		lowercaseChars, lowercaseChars,
		numberChars, numberChars,
		symbolChars, symbolChars,
		anyChars,
	}
	for i, charset := range checks {
		assert.True(t, strings.IndexByte(charset, password[i]) >= 0, "position %d: %q not in %q", i, password[i], charset)
	}
}

func TestFromTemplateLength(t *testing.T) {
	g := newTestGenerator(10)

	assert.Len(t, g.FromTemplate("UULLDDSS"), 8)
	assert.Empty(t, g.FromTemplate(""))
}

func TestFromTemplateLiterals(t *testing.T) {
	g := newTestGenerator(12)

	assert.Equal(t, "ABC-123", g.FromTemplate("ABC-123"))

	password := g.FromTemplate("id-UUUU-DD")
	require.Len(t, password, 10)
	assert.Equal(t, "id-", password[:3])
	assert.Equal(t, byte('-'), password[7])
}

func TestFromTemplateMultibyteLiterals(t *testing.T) {
	g := newTestGenerator(13)

	password := g.FromTemplate("é·UUDD")
	assert.Equal(t, 6, utf8.RuneCountInString(password))
	assert.True(t, strings.HasPrefix(password, "é·"))
}

func TestIsValidTemplate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{name: "too short", pattern: "UUUU", want: false},
		{name: "eleven characters", pattern: "UULLDDSSXXX", want: false},
		{name: "all classes", pattern: "UUULLLDDDSSS", want: true},
		{name: "one of each padded with literals", pattern: "ULDS--------", want: true},
		{name: "single class", pattern: "LLLLLLLLLLLL", want: false},
		{name: "x covers missing classes", pattern: "LLLLLLLLLXXX", want: true},
		{name: "x too few", pattern: "LLLLLLLLLLXX", want: false},
		{name: "only wildcards", pattern: "XXXXXXXXXXXX", want: true},
		{name: "literals only", pattern: "abcdefghijkl", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTemplate(tt.pattern))
		})
	}
}
