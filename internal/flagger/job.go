package flagger

import "errors"

// Sentinel errors carried on a Job. Use errors.Is to classify.
var (
	ErrUnrecognizedFlag = errors.New("unrecognized flag")
	ErrFileNotFound     = errors.New("cannot find file")
	ErrSyntax           = errors.New("syntax error")
)

// Outcome is the tagged result of dispatching one flag.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeUnrecognized
	OutcomeFileNotFound
	OutcomeSyntaxError
)

// Job codes. File-not-found keeps the value 3 that older front-ends
// reported for it.
const (
	CodeDone         = 0
	CodeUnrecognized = 1
	CodeFileNotFound = 3
	CodeSyntaxError  = 4
)

// Code returns the numeric job code for o.
func (o Outcome) Code() int {
	switch o {
	case OutcomeDone:
		return CodeDone
	case OutcomeUnrecognized:
		return CodeUnrecognized
	case OutcomeFileNotFound:
		return CodeFileNotFound
	case OutcomeSyntaxError:
		return CodeSyntaxError
	default:
		return CodeUnrecognized
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeFileNotFound:
		return "file_not_found"
	case OutcomeSyntaxError:
		return "syntax_error"
	default:
		return "unknown"
	}
}

// Job is what the dispatcher hands to the exit translator.
type Job struct {
	Outcome Outcome
	Flag    string
	Err     error
}

// Code is shorthand for j.Outcome.Code().
func (j Job) Code() int {
	return j.Outcome.Code()
}

func done() Job {
	return Job{Outcome: OutcomeDone}
}

func failed(o Outcome, err error) Job {
	return Job{Outcome: o, Err: err}
}
