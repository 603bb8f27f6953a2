package crypto

import "strings"

// Template directives. Any other rune in a pattern is copied verbatim.
const (
	DirectiveUppercase = 'U'
	DirectiveLowercase = 'L'
	DirectiveNumber    = 'D'
	DirectiveSymbol    = 'S'
	DirectiveAny       = 'X'
)

func directiveAlphabet(r rune) (string, bool) {
	switch r {
	case DirectiveUppercase:
		return uppercaseChars, true
	case DirectiveLowercase:
		return lowercaseChars, true
	case DirectiveNumber:
		return numberChars, true
	case DirectiveSymbol:
		return symbolChars, true
	case DirectiveAny:
		return anyChars, true
	default:
		return "", false
	}
}

// FromTemplate fills pattern position by position. Directives draw one
// character from their alphabet, everything else is a literal. The result is
// never shuffled, so positions follow the pattern exactly.
func (g *Generator) FromTemplate(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern))

	for _, r := range pattern {
		alphabet, ok := directiveAlphabet(r)
		if !ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(g.randChar(alphabet))
	}
	return sb.String()
}

// IsValidTemplate reports whether pattern is at least MinLength long and can
// cover all four classes, counting X directives as wildcards for missing ones.
// It is advisory; FromTemplate accepts any pattern.
func IsValidTemplate(pattern string) bool {
	if len([]rune(pattern)) < MinLength {
		return false
	}

	present := 0
	for _, d := range []string{"U", "L", "D", "S"} {
		if strings.Contains(pattern, d) {
			present++
		}
	}

	return strings.Count(pattern, "X") >= 4-present
}
