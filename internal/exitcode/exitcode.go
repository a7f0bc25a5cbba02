// Package exitcode turns a dispatcher Job into console diagnostics and a
// process exit status.
package exitcode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/terno-lang/terno/internal/flagger"
	"github.com/terno-lang/terno/internal/lexer"
	"github.com/terno-lang/terno/internal/parser"
)

// Messages printed for failed jobs.
const (
	MsgUnrecognized = "Exit with error code 1."
	MsgFileNotFound = "Cannot find file."
	LabelLexical    = "Lexical Error:"
	LabelParsing    = "Parsing Error:"
)

// Code wraps the numeric job code that decides the process status.
type Code struct {
	Value int64
}

// Status maps the code to a process exit status. Zero and values of 256 or
// more succeed; everything else fails.
func (c Code) Status() int {
	if c.Value != 0 && c.Value < 256 {
		return 1
	}
	return 0
}

// Success reports whether Status is zero.
func (c Code) Success() bool {
	return c.Status() == 0
}

// Translate prints the diagnostic for job to w, if any, and returns its code.
// Successful jobs print nothing.
func Translate(w io.Writer, job flagger.Job) Code {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	switch job.Outcome {
	case flagger.OutcomeUnrecognized:
		fmt.Fprintln(w, label.Render(MsgUnrecognized))
	case flagger.OutcomeFileNotFound:
		fmt.Fprintln(w, label.Render(MsgFileNotFound))
	case flagger.OutcomeSyntaxError:
		fmt.Fprintln(w, syntaxLabel(job.Err, label), syntaxDetail(job.Err))
	}
	return Code{Value: int64(job.Code())}
}

func syntaxLabel(err error, style lipgloss.Style) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return style.Render(LabelLexical)
	}
	return style.Render(LabelParsing)
}

func syntaxDetail(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Error()
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}
	if err != nil {
		return err.Error()
	}
	return "unable to parse source"
}

var osExit = os.Exit

// Exit terminates the process with c.Status().
func Exit(c Code) {
	osExit(c.Status())
}
