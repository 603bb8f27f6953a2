package display

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Renderer shows a finished password. Renderers never influence generation.
type Renderer interface {
	Render(ctx context.Context, password string) error
}

// Plain prints the password without animation.
type Plain struct {
	Printer *Printer
}

func (r Plain) Render(_ context.Context, password string) error {
	r.Printer.Password(password)
	return nil
}

// Reveal prints the password masked with asterisks, then uncovers it one
// character per tick.
type Reveal struct {
	printer *Printer
	limiter *rate.Limiter
}

// revealHoldTicks is how long the fully masked password stays on screen.
const revealHoldTicks = 5

// NewReveal creates a typing reveal with one character per interval. A zero
// interval disables pacing.
func NewReveal(p *Printer, interval time.Duration) *Reveal {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Reveal{printer: p, limiter: rate.NewLimiter(limit, 1)}
}

func (r *Reveal) Render(ctx context.Context, password string) error {
	w := r.printer.Writer()
	styles := r.printer.Styles()
	runes := []rune(password)

	r.printer.line(styles.Title, "Generated Password:")

	masked := []rune(strings.Repeat("*", len(runes)))
	fmt.Fprint(w, styles.Masked.Render(string(masked)), "\r")
	for range revealHoldTicks {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	for i := range runes {
		masked[i] = runes[i]
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		fmt.Fprint(w, styles.Password.Render(string(masked)), "\r")
	}

	fmt.Fprintln(w, styles.Password.Render(password)+strings.Repeat(" ", 10))
	return nil
}
