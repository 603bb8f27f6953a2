package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen/internal/strength"
)

const header = `
    ╔═══════════════════════════════════════════════════════╗
    ║                 PASSWORD GENERATOR                    ║
    ╚═══════════════════════════════════════════════════════╝`

// Rule is the separator printed around batches.
var Rule = strings.Repeat("=", 50)

// Printer writes styled CLI output.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, styles: NewStyles(w, color)}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Styles returns the styles bound to the printer's writer.
func (p *Printer) Styles() Styles { return p.styles }

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}

// Header prints the application banner.
func (p *Printer) Header() {
	p.line(p.styles.Header, "%s", header)
}

// Footer prints the closing rule and message.
func (p *Printer) Footer() {
	p.line(p.styles.Notice, "\n%s", Rule)
	p.line(p.styles.Header, "Thank you for using the Password Generator Tool!")
}

// Notice prints an informational or warning line.
func (p *Printer) Notice(format string, args ...any) {
	p.line(p.styles.Notice, format, args...)
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.styles.Success, format, args...)
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.styles.Error, format, args...)
}

// BatchHeader announces how many passwords follow.
func (p *Printer) BatchHeader(n int) {
	p.line(p.styles.Notice, "\nGenerated %d password(s):", n)
	p.line(p.styles.Notice, "%s", Rule)
}

// PasswordLabel prints the "Password i:" heading used in multi-password batches.
func (p *Printer) PasswordLabel(i int) {
	p.line(p.styles.Label, "\nPassword %d:", i)
}

// Password prints a password without animation.
func (p *Printer) Password(password string) {
	p.line(p.styles.Title, "Generated Password:")
	p.line(p.styles.Password, "%s", password)
}

// Hash prints an encoded hash of the password.
func (p *Printer) Hash(hash string) {
	p.line(p.styles.Label, "Hash: %s", hash)
}

// Strength prints a strength report with its feedback bullets.
func (p *Printer) Strength(report strength.Report) {
	p.line(p.styles.ScoreStyle(report.Score), "Strength: %s (%d/100)", report.Label, report.Score)
	if len(report.Feedback) == 0 {
		return
	}
	p.line(p.styles.Notice, "Feedback:")
	for _, item := range report.Feedback {
		p.line(p.styles.Notice, " • %s", item)
	}
}
