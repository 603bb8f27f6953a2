package model

import "github.com/vaultpass/passgen/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int
	Count     int
	Uppercase *bool
	Lowercase *bool
	Numbers   *bool
	Symbols   *bool
	// Template switches to pattern generation; Length and the class flags are
	// ignored when it is set.
	Template string
	Evaluate bool
	Hash     bool
}

// GeneratedPassword is one password of a batch. Index is 1-based.
type GeneratedPassword struct {
	Index    int
	Password string
	Strength *strength.Report
	Hash     string
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword
	// Warnings are advisory; generation always proceeds.
	Warnings []string
}

// Values returns the passwords in batch order.
func (r GenerateResponse) Values() []string {
	values := make([]string, len(r.Passwords))
	for i, p := range r.Passwords {
		values[i] = p.Password
	}
	return values
}
