package crypto

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	// symbolChars is the generation alphabet. The strength evaluator
	// recognizes a wider punctuation set; the two must stay separate.
	symbolChars = "!@#$%&_-?"

	anyChars = uppercaseChars + lowercaseChars + numberChars + symbolChars
)

// Class identifies one character class.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Number
	Symbol
)

// String returns the human readable class name.
func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Number:
		return "number"
	case Symbol:
		return "special"
	default:
		return "unknown"
	}
}

// Alphabet returns the generation alphabet of the class.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Number:
		return numberChars
	case Symbol:
		return symbolChars
	default:
		return ""
	}
}

// Reserved is the number of characters guaranteed for an enabled class.
func (c Class) Reserved() int {
	switch c {
	case Uppercase, Lowercase:
		return 4
	case Number, Symbol:
		return 2
	default:
		return 0
	}
}
