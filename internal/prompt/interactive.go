// Package prompt implements the interactive question-and-answer mode.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/display"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/model"
)

// ErrCancelled is returned when input ends before all questions are answered.
var ErrCancelled = errors.New("operation cancelled by user")

// Session asks the interactive questions over r and w.
type Session struct {
	scanner *bufio.Scanner
	printer *display.Printer
	styles  display.Styles

	defaultLength int
	defaultCount  int
}

// NewSession creates a Session. defaultLength and defaultCount are offered
// when an answer is left empty.
func NewSession(r io.Reader, p *display.Printer, defaultLength, defaultCount int) *Session {
	return &Session{
		scanner:       bufio.NewScanner(r),
		printer:       p,
		styles:        p.Styles(),
		defaultLength: defaultLength,
		defaultCount:  defaultCount,
	}
}

// Run asks every question and returns the request and display options the
// answers describe.
func (s *Session) Run() (model.GenerateRequest, handler.Options, error) {
	var (
		req  model.GenerateRequest
		opts handler.Options
		err  error
	)

	s.printer.Notice("\nPassword Generator Interactive Mode")
	s.printer.Notice("%s", display.Rule)

	req.Length, err = s.askInt("Enter password length (min 12, default "+strconv.Itoa(s.defaultLength)+"): ", s.defaultLength)
	if err != nil {
		return req, opts, err
	}
	if req.Length < crypto.MinLength {
		s.printer.Error("Password length must be at least 12. Using 12.")
		req.Length = crypto.MinLength
	}

	classes := []struct {
		question string
		dst      **bool
	}{
		{"Include uppercase letters? (Y/n): ", &req.Uppercase},
		{"Include lowercase letters? (Y/n): ", &req.Lowercase},
		{"Include numbers? (Y/n): ", &req.Numbers},
		{"Include special characters? (Y/n): ", &req.Symbols},
	}
	anyEnabled := false
	for _, c := range classes {
		v, err := s.askBool(c.question, true)
		if err != nil {
			return req, opts, err
		}
		*c.dst = &v
		anyEnabled = anyEnabled || v
	}
	if !anyEnabled {
		s.printer.Error("You must include at least one character type. Using all types.")
		for _, c := range classes {
			enabled := true
			*c.dst = &enabled
		}
	}

	req.Count, err = s.askInt("Number of passwords to generate (default "+strconv.Itoa(s.defaultCount)+"): ", s.defaultCount)
	if err != nil {
		return req, opts, err
	}
	if req.Count < 1 {
		s.printer.Error("Must generate at least 1 password. Using 1.")
		req.Count = 1
	}

	if req.Evaluate, err = s.askBool("Show password strength evaluation? (y/N): ", false); err != nil {
		return req, opts, err
	}
	if opts.Clipboard, err = s.askBool("Copy password to clipboard? (Y/n): ", true); err != nil {
		return req, opts, err
	}
	if opts.Animate, err = s.askBool("Show animated reveal? (y/N): ", false); err != nil {
		return req, opts, err
	}

	save, err := s.askBool("Save passwords to file? (y/N): ", false)
	if err != nil {
		return req, opts, err
	}
	if save {
		filename, err := s.ask("Enter filename: ")
		if err != nil {
			return req, opts, err
		}
		if filename == "" {
			s.printer.Notice("No filename provided. Passwords will not be saved.")
		}
		opts.SaveTo = filename
	}

	s.printer.Notice("\nGenerating passwords...")
	return req, opts, nil
}

func (s *Session) ask(question string) (string, error) {
	io.WriteString(s.printer.Writer(), s.styles.Label.Render(question))
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrCancelled
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// askInt re-asks until the answer is empty or a number.
func (s *Session) askInt(question string, fallback int) (int, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return fallback, nil
		}
		v, err := strconv.Atoi(answer)
		if err == nil {
			return v, nil
		}
		s.printer.Error("Please enter a valid number")
	}
}

// askBool treats an empty answer as fallback. A default-yes question is only
// turned off by "n", a default-no question only turned on by "y".
func (s *Session) askBool(question string, fallback bool) (bool, error) {
	answer, err := s.ask(question)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	if fallback {
		return answer != "n", nil
	}
	return answer == "y", nil
}
