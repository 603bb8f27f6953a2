package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/display"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/prompt"
	"github.com/vaultpass/passgen/internal/service"
)

// ErrHashMismatch is returned by "evaluate --verify" when the hash does not match.
var ErrHashMismatch = errors.New("hash does not match password")

// app wires the components shared by all commands.
type app struct {
	cfg     config.Config
	in      io.Reader
	printer *display.Printer
	service *service.GeneratorService
	handler *handler.GeneratorHandler
}

func newApp(cfg config.Config, in io.Reader, out io.Writer) *app {
	rng := crypto.NewSecureRand()
	printer := display.NewPrinter(out, !cfg.NoColor)
	svc := service.NewGeneratorService(crypto.NewGenerator(rng), crypto.NewHasher(crypto.DefaultHashParams(), nil))

	return &app{
		cfg:     cfg,
		in:      in,
		printer: printer,
		service: svc,
		handler: handler.NewGeneratorHandler(svc, printer,
			display.NewReveal(printer, cfg.RevealInterval),
			display.NewMatrix(printer, rng, cfg.MatrixFrame),
		),
	}
}

type generateFlags struct {
	length      int
	number      int
	noUpper     bool
	noLower     bool
	noNumbers   bool
	noSpecial   bool
	noClipboard bool
	evaluate    bool
	save        string
	template    string
	interactive bool
	animate     bool
	matrix      bool
	hash        bool
}

func newRootCmd(cfg config.Config, a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate secure random passwords",
		Long: `passgen generates random passwords that always contain a minimum number of
uppercase, lowercase, digit and special characters, or follow a template.

Template characters:
  U  uppercase letter
  L  lowercase letter
  D  digit
  S  special character
  X  any of the above
Anything else is copied literally, e.g. "UUUU-LLLL-DDSS".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd.Context(), f)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&f.length, "length", "l", cfg.DefaultLength, "Password length (minimum: 12)")
	fs.IntVarP(&f.number, "number", "n", cfg.DefaultCount, "Number of passwords to generate")
	fs.BoolVar(&f.noUpper, "no-uppercase", false, "Exclude uppercase letters")
	fs.BoolVar(&f.noLower, "no-lowercase", false, "Exclude lowercase letters")
	fs.BoolVar(&f.noNumbers, "no-numbers", false, "Exclude numbers")
	fs.BoolVar(&f.noSpecial, "no-special", false, "Exclude special characters")
	fs.BoolVar(&f.noClipboard, "no-clipboard", !cfg.Clipboard, "Do not copy password to clipboard")
	fs.BoolVarP(&f.evaluate, "evaluate", "e", false, "Show password strength evaluation")
	fs.StringVarP(&f.save, "save", "s", "", "Save generated passwords to `FILENAME`")
	fs.StringVarP(&f.template, "template", "t", "", "Use `PATTERN` template (U=uppercase, L=lowercase, D=digit, S=special, X=any)")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "Run in interactive mode")
	fs.BoolVarP(&f.animate, "animate", "a", false, "Show animated password reveal")
	fs.BoolVarP(&f.matrix, "matrix", "m", false, "Show password with matrix effect animation")
	fs.BoolVar(&f.hash, "hash", false, "Also print an Argon2id hash of each password")

	cmd.AddCommand(newEvaluateCmd(a))
	return cmd
}

func newEvaluateCmd(a *app) *cobra.Command {
	var verify string

	cmd := &cobra.Command{
		Use:   "evaluate [password]",
		Short: "Score the strength of an existing password",
		Long: `Scores a password given as argument, or read as one line from stdin.
With --verify the password is also checked against an Argon2id hash, such as
one printed by "passgen --hash".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(a.in).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			a.printer.Strength(a.service.Evaluate(password))

			if verify == "" {
				return nil
			}
			match, err := crypto.Verify(password, verify)
			if err != nil {
				return a.fail(fmt.Errorf("verifying hash: %w", err))
			}
			if !match {
				a.printer.Error("Hash does not match password")
				return ErrHashMismatch
			}
			a.printer.Success("Hash matches password")
			return nil
		},
	}
	cmd.Flags().StringVar(&verify, "verify", "", "Check the password against an Argon2id `HASH`")
	return cmd
}

func (a *app) runGenerate(ctx context.Context, f generateFlags) error {
	a.printer.Header()

	var (
		req  model.GenerateRequest
		opts handler.Options
	)

	if f.interactive {
		session := prompt.NewSession(a.in, a.printer, a.cfg.DefaultLength, a.cfg.DefaultCount)
		var err error
		req, opts, err = session.Run()
		if err != nil {
			return a.fail(err)
		}
	} else {
		// Flags always carry an explicit value, so zero is not "unset" here.
		if f.template == "" && f.length < crypto.MinLength {
			a.printer.Notice("Warning: %s", service.WarnShortLength)
			f.length = crypto.MinLength
		}
		if f.number < 1 {
			a.printer.Notice("Warning: %s", service.WarnInvalidNumber)
			f.number = 1
		}
		req = model.GenerateRequest{
			Length:   f.length,
			Count:    f.number,
			Template: f.template,
			Evaluate: f.evaluate,
		}
		if f.template == "" {
			req.Uppercase = boolPtr(!f.noUpper)
			req.Lowercase = boolPtr(!f.noLower)
			req.Numbers = boolPtr(!f.noNumbers)
			req.Symbols = boolPtr(!f.noSpecial)
		}
		opts = handler.Options{
			Clipboard: !f.noClipboard,
			Animate:   f.animate,
			Matrix:    f.matrix,
			SaveTo:    f.save,
		}
	}
	req.Hash = f.hash

	if _, err := a.handler.HandleGenerate(ctx, req, opts); err != nil {
		return a.fail(err)
	}

	a.printer.Footer()
	return nil
}

// fail reports err to the user and returns it for the exit code.
func (a *app) fail(err error) error {
	if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
		a.printer.Error("\nOperation cancelled by user.")
		return err
	}
	a.printer.Error("Error: %v", err)
	return err
}

func boolPtr(b bool) *bool { return &b }
