package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

// Advisory warnings returned alongside generated passwords.
const (
	WarnWeakTemplate  = "Template may not produce secure passwords. Ensure it includes U (uppercase), L (lowercase), D (digit), and S (special) characters."
	WarnShortLength   = "Password length less than 12 is not recommended. Adjusting to minimum length of 12."
	WarnNoClasses     = "At least one character type must be enabled. Using lowercase letters as default."
	WarnInvalidNumber = "Must generate at least 1 password. Using 1."
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	hasher    *crypto.Hasher
}

// NewGeneratorService creates a new GeneratorService. hasher may be nil when
// hashes are never requested.
func NewGeneratorService(generator *crypto.Generator, hasher *crypto.Hasher) *GeneratorService {
	return &GeneratorService{generator: generator, hasher: hasher}
}

// Generate produces a batch of passwords. Out of range input is coerced and
// reported as a warning instead of failing. The only errors are a cancelled
// context and hashing failures.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	var resp model.GenerateResponse

	// Zero means unset for both Count and Length; negative values are invalid.
	count := req.Count
	switch {
	case count == 0:
		count = 1
	case count < 0:
		resp.Warnings = append(resp.Warnings, WarnInvalidNumber)
		count = 1
	}

	var next func() string
	if req.Template != "" {
		if !crypto.IsValidTemplate(req.Template) {
			resp.Warnings = append(resp.Warnings, WarnWeakTemplate)
		}
		next = func() string { return s.generator.FromTemplate(req.Template) }
	} else {
		opts := crypto.GeneratorOptions{
			Length:    req.Length,
			Uppercase: boolOrDefault(req.Uppercase, true),
			Lowercase: boolOrDefault(req.Lowercase, true),
			Numbers:   boolOrDefault(req.Numbers, true),
			Symbols:   boolOrDefault(req.Symbols, true),
		}
		if opts.Length == 0 {
			opts.Length = crypto.DefaultOptions().Length
		}
		if opts.Length < crypto.MinLength {
			resp.Warnings = append(resp.Warnings, WarnShortLength)
			opts.Length = crypto.MinLength
		}
		if len(opts.Classes()) == 0 {
			resp.Warnings = append(resp.Warnings, WarnNoClasses)
			opts.Lowercase = true
		}
		next = func() string { return s.generator.Generate(opts) }
	}

	for _, w := range resp.Warnings {
		slog.Warn("generation request adjusted", "warning", w)
	}

	resp.Passwords = make([]model.GeneratedPassword, 0, count)
	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			return model.GenerateResponse{}, err
		}

		p := model.GeneratedPassword{Index: i, Password: next()}
		if req.Evaluate {
			report := strength.Evaluate(p.Password)
			p.Strength = &report
		}
		if req.Hash {
			if s.hasher == nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password %d: no hasher configured", i)
			}
			hash, err := s.hasher.Hash(p.Password)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password %d: %w", i, err)
			}
			p.Hash = hash
		}
		resp.Passwords = append(resp.Passwords, p)
	}

	slog.Debug("passwords generated", "count", count, "template", req.Template != "")
	return resp, nil
}

// Evaluate scores an arbitrary password.
func (s *GeneratorService) Evaluate(password string) strength.Report {
	return strength.Evaluate(password)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
