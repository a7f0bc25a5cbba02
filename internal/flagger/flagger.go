// Package flagger maps the first command-line token to an action and reports
// the result as a Job for the exit translator.
package flagger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/terno-lang/terno/internal/lexer"
	"github.com/terno-lang/terno/internal/parser"
	"github.com/terno-lang/terno/internal/scope"
)

const helpTitle = "Terno 2024 ©"

const helpBody = `Usage: terno [-r {file}, -h]

terno run {file} will run the file
and terno help will show this message

Inspect a source file:
  terno tokens {file}   (-t) print the token stream
  terno parse {file}    (-p) print the syntax tree
  terno scopes {file}   (-s) print the declaration scopes
  terno version         (-v) print the version`

type action func(d *Dispatcher, ctx context.Context, args Args) Job

var actions = map[string]action{
	"-h":      (*Dispatcher).help,
	"help":    (*Dispatcher).help,
	"-r":      (*Dispatcher).run,
	"run":     (*Dispatcher).run,
	"-t":      (*Dispatcher).tokens,
	"tokens":  (*Dispatcher).tokens,
	"-p":      (*Dispatcher).parse,
	"parse":   (*Dispatcher).parse,
	"-s":      (*Dispatcher).scopes,
	"scopes":  (*Dispatcher).scopes,
	"-v":      (*Dispatcher).version,
	"version": (*Dispatcher).version,
}

// Dispatcher runs the action selected by a flag token.
type Dispatcher struct {
	out     io.Writer
	logger  *slog.Logger
	release string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithVersion sets the version string printed by the version action.
func WithVersion(v string) Option {
	return func(d *Dispatcher) {
		d.release = v
	}
}

// New creates a Dispatcher that writes help text and results to out.
func New(out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		out:     out,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		release: "dev",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs the action for args.Flag. Unknown or missing flags print
// the help text and yield OutcomeUnrecognized.
func (d *Dispatcher) Dispatch(ctx context.Context, args Args) Job {
	act, ok := actions[args.Flag]
	if !ok {
		d.logger.DebugContext(ctx, "unrecognized flag", "flag", args.Flag)
		d.printHelp()
		job := failed(OutcomeUnrecognized, fmt.Errorf("%w: %q", ErrUnrecognizedFlag, args.Flag))
		job.Flag = args.Flag
		return job
	}

	job := act(d, ctx, args)
	job.Flag = args.Flag
	d.logger.DebugContext(ctx, "flag dispatched",
		"flag", args.Flag,
		"outcome", job.Outcome.String(),
		"code", job.Code(),
	)
	return job
}

func (d *Dispatcher) printHelp() {
	title := lipgloss.NewRenderer(d.out).NewStyle().Bold(true)
	fmt.Fprintln(d.out, title.Render(helpTitle))
	fmt.Fprintln(d.out, helpBody)
}

func (d *Dispatcher) help(context.Context, Args) Job {
	d.printHelp()
	return done()
}

func (d *Dispatcher) version(context.Context, Args) Job {
	fmt.Fprintf(d.out, "terno %s\n", d.release)
	return done()
}

func (d *Dispatcher) run(ctx context.Context, args Args) Job {
	return d.withSource(ctx, args, func(f *os.File) error {
		d.logger.DebugContext(ctx, "source opened", "path", f.Name())
		return nil
	})
}

func (d *Dispatcher) tokens(ctx context.Context, args Args) Job {
	return d.withSource(ctx, args, func(f *os.File) error {
		toks, err := lexer.Read(f)
		if err != nil {
			return err
		}
		for _, tok := range toks {
			fmt.Fprintln(d.out, tok)
		}
		return nil
	})
}

func (d *Dispatcher) parse(ctx context.Context, args Args) Job {
	return d.withSource(ctx, args, func(f *os.File) error {
		prog, err := parser.ParseReader(f)
		if err != nil {
			return err
		}
		return d.dump(prog)
	})
}

func (d *Dispatcher) scopes(ctx context.Context, args Args) Job {
	return d.withSource(ctx, args, func(f *os.File) error {
		prog, err := parser.ParseReader(f)
		if err != nil {
			return err
		}
		return d.dump(scope.Build(prog))
	})
}

func (d *Dispatcher) dump(v any) error {
	enc := yaml.NewEncoder(d.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// withSource opens the operand for reading, hands it to fn and closes it
// before returning. Open failures map to OutcomeFileNotFound; lexer and
// parser errors from fn map to OutcomeSyntaxError.
func (d *Dispatcher) withSource(ctx context.Context, args Args, fn func(*os.File) error) Job {
	f, err := openSource(args)
	if err != nil {
		d.logger.DebugContext(ctx, "open source failed", "path", args.Operand, "error", err)
		return failed(OutcomeFileNotFound, err)
	}
	defer func() { _ = f.Close() }()

	if err := fn(f); err != nil {
		var lexErr *lexer.Error
		var parseErr *parser.Error
		if errors.As(err, &lexErr) || errors.As(err, &parseErr) {
			return failed(OutcomeSyntaxError, fmt.Errorf("%w: %w", ErrSyntax, err))
		}
		return failed(OutcomeFileNotFound, fmt.Errorf("%w: %w", ErrFileNotFound, err))
	}
	return done()
}

func openSource(args Args) (*os.File, error) {
	if !args.HasOperand || args.Operand == "" {
		return nil, fmt.Errorf("%w: missing file operand", ErrFileNotFound)
	}
	info, err := os.Stat(args.Operand)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, args.Operand)
	}
	f, err := os.Open(args.Operand)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return f, nil
}
