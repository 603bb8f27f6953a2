// Package strength scores passwords with a length, class and diversity
// heuristic. It is a descriptive aid, not an entropy estimate.
package strength

import (
	"strings"
	"unicode"
)

// specialChars is the punctuation recognized when scoring. It is wider than
// the generator's symbol alphabet.
const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?/"

// Label is the descriptive strength band.
type Label string

const (
	VeryWeak   Label = "Very Weak"
	Weak       Label = "Weak"
	Moderate   Label = "Moderate"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// Feedback messages.
const (
	FeedbackGoodLength       = "Good length"
	FeedbackAcceptableLength = "Acceptable length"
	FeedbackTooShort         = "Too short"
	FeedbackAddUppercase     = "Add uppercase letters"
	FeedbackAddLowercase     = "Add lowercase letters"
	FeedbackAddNumbers       = "Add numbers"
	FeedbackAddSpecial       = "Add special characters"
	FeedbackAddVariety       = "Add more variety of characters"
)

// Report is the result of Evaluate.
type Report struct {
	Score    int      `json:"score"`
	Label    Label    `json:"label"`
	Feedback []string `json:"feedback"`
}

// Evaluate scores password out of 100: up to 40 for length, 10 per character
// class present and up to 20 for character diversity.
func Evaluate(password string) Report {
	var (
		score    int
		feedback []string
	)

	runes := []rune(password)
	length := len(runes)

	switch {
	case length >= 16:
		score += 40
		feedback = append(feedback, FeedbackGoodLength)
	case length >= 12:
		score += 30
		feedback = append(feedback, FeedbackAcceptableLength)
	default:
		score += 15
		feedback = append(feedback, FeedbackTooShort)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	unique := make(map[rune]struct{}, length)
	for _, r := range runes {
		unique[r] = struct{}{}
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialChars, r) {
			hasSpecial = true
		}
	}

	for _, c := range []struct {
		present bool
		advice  string
	}{
		{hasUpper, FeedbackAddUppercase},
		{hasLower, FeedbackAddLowercase},
		{hasDigit, FeedbackAddNumbers},
		{hasSpecial, FeedbackAddSpecial},
	} {
		if c.present {
			score += 10
			continue
		}
		feedback = append(feedback, c.advice)
	}

	if length > 0 {
		score += min(20, len(unique)*20/length)
		if 2*len(unique) < length {
			feedback = append(feedback, FeedbackAddVariety)
		}
	}

	return Report{
		Score:    score,
		Label:    labelFor(score),
		Feedback: feedback,
	}
}

func labelFor(score int) Label {
	switch {
	case score >= 90:
		return VeryStrong
	case score >= 70:
		return Strong
	case score >= 50:
		return Moderate
	case score >= 30:
		return Weak
	default:
		return VeryWeak
	}
}
