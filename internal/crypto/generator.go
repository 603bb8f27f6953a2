package crypto

// MinLength is the shortest password Generate will produce.
const MinLength = 12

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the enabled classes in reservation order.
func (o GeneratorOptions) Classes() []Class {
	var classes []Class
	if o.Symbols {
		classes = append(classes, Symbol)
	}
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Numbers {
		classes = append(classes, Number)
	}
	return classes
}

// Generator composes passwords from an injected random source.
type Generator struct {
	rng Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate creates a random password based on the given options.
//
// Length is raised to MinLength. Every enabled class contributes its reserved
// characters before the fill, so the result is never shorter than their sum.
// With no class enabled the lowercase alphabet is used for the fill.
func (g *Generator) Generate(opts GeneratorOptions) string {
	length := max(opts.Length, MinLength)
	classes := opts.Classes()

	var pool string
	for _, c := range []Class{Uppercase, Lowercase, Number, Symbol} {
		if opts.enabled(c) {
			pool += c.Alphabet()
		}
	}
	if pool == "" {
		pool = lowercaseChars
	}

	result := make([]byte, 0, length)

	// Guarantee the reserved count of each selected type.
	for _, c := range classes {
		alphabet := c.Alphabet()
		for range c.Reserved() {
			result = append(result, g.randChar(alphabet))
		}
	}

	// Fill the remaining positions from the full pool.
	for range length - len(result) {
		result = append(result, g.randChar(pool))
	}

	g.shuffle(result)
	return string(result)
}

func (o GeneratorOptions) enabled(c Class) bool {
	switch c {
	case Uppercase:
		return o.Uppercase
	case Lowercase:
		return o.Lowercase
	case Number:
		return o.Numbers
	case Symbol:
		return o.Symbols
	default:
		return false
	}
}

// randChar picks a uniformly random character from charset.
func (g *Generator) randChar(charset string) byte {
	return charset[g.rng.IntN(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
