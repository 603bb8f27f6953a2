package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"

	"github.com/vaultpass/passgen/internal/display"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

var (
	ErrSaveFailed           = errors.New("saving passwords failed")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = writeClipboard

// Options controls how a generated batch is presented.
type Options struct {
	Clipboard bool
	Animate   bool
	Matrix    bool
	SaveTo    string
}

// GeneratorHandler turns a generation request into terminal output.
type GeneratorHandler struct {
	service *service.GeneratorService
	printer *display.Printer
	reveal  display.Renderer
	matrix  display.Renderer
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, printer *display.Printer, reveal, matrix display.Renderer) *GeneratorHandler {
	return &GeneratorHandler{service: svc, printer: printer, reveal: reveal, matrix: matrix}
}

// HandleGenerate generates, prints, copies and saves a batch. Clipboard and
// file failures are reported and do not fail the command.
func (h *GeneratorHandler) HandleGenerate(ctx context.Context, req model.GenerateRequest, opts Options) (model.GenerateResponse, error) {
	resp, err := h.service.Generate(ctx, req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	for _, w := range resp.Warnings {
		h.printer.Notice("Warning: %s", w)
	}

	n := len(resp.Passwords)
	h.printer.BatchHeader(n)

	if opts.Matrix && n == 1 {
		if err := h.matrix.Render(ctx, resp.Passwords[0].Password); err != nil {
			return resp, fmt.Errorf("rendering matrix: %w", err)
		}
		h.details(resp.Passwords[0])
		if opts.Clipboard {
			h.copy(resp.Passwords[0].Password)
		}
	} else {
		plain := display.Plain{Printer: h.printer}
		for _, p := range resp.Passwords {
			last := p.Index == n
			if n > 1 {
				h.printer.PasswordLabel(p.Index)
			}

			var renderer display.Renderer = plain
			if opts.Animate && last {
				renderer = h.reveal
			}
			if err := renderer.Render(ctx, p.Password); err != nil {
				return resp, fmt.Errorf("rendering password %d: %w", p.Index, err)
			}
			h.details(p)

			// Only the last password reaches the clipboard.
			if opts.Clipboard && last {
				h.copy(p.Password)
			}
		}
	}

	if opts.SaveTo != "" {
		if err := SavePasswords(opts.SaveTo, resp.Values()); err != nil {
			slog.Error("save failed", "file", opts.SaveTo, "error", err)
			h.printer.Error("Error saving passwords to file: %v", err)
		} else {
			h.printer.Success("\nPasswords saved to %s", opts.SaveTo)
		}
	}

	return resp, nil
}

func (h *GeneratorHandler) details(p model.GeneratedPassword) {
	if p.Strength != nil {
		h.printer.Strength(*p.Strength)
	}
	if p.Hash != "" {
		h.printer.Hash(p.Hash)
	}
}

func (h *GeneratorHandler) copy(password string) {
	if err := clipboardWriteAll(password); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		h.printer.Notice("! Could not copy password to clipboard")
		return
	}
	h.printer.Success("✓ Password copied to clipboard! [Ready to paste]")
}

// writeClipboard copies password to the system clipboard.
func writeClipboard(password string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(password); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// SavePasswords writes one "Password N: <value>" line per password, 1-indexed.
func SavePasswords(filename string, passwords []string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	w := bufio.NewWriter(f)
	for i, p := range passwords {
		fmt.Fprintf(w, "Password %d: %s\n", i+1, p)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}
