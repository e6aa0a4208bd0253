package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnknownArg         = errors.New("unknown argument")
	ErrMissingArgValue    = errors.New("missing argument value")
	ErrUnexpectedArgValue = errors.New("unexpected argument value")
	ErrMissingValue       = errors.New("missing value")
	ErrHelpRequested      = errors.New("help requested")
)

// ErrorKind identifies the case of a [ParseError].
type ErrorKind int

const (
	UnknownCommand ErrorKind = iota
	UnknownArg
	MissingArgValue
	UnexpectedArgValue
	MissingValue
	HelpRequested
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownCommand:
		return ErrUnknownCommand
	case UnknownArg:
		return ErrUnknownArg
	case MissingArgValue:
		return ErrMissingArgValue
	case UnexpectedArgValue:
		return ErrUnexpectedArgValue
	case MissingValue:
		return ErrMissingValue
	default:
		return ErrHelpRequested
	}
}

// ParseError is returned when argument parsing stops early.
// Path holds the command names descended into before the failure, starting with the root.
//
// A [HelpRequested] error isn't really a failure. It signals that help for Path should be shown.
// Use [errors.Is] with [ErrHelpRequested] to tell the difference.
type ParseError struct {
	Kind ErrorKind
	Path []string
	Name string
}

func (e *ParseError) Error() string {
	at := strings.Join(e.Path, " ")
	switch e.Kind {
	case UnknownCommand:
		return fmt.Sprintf("unknown command '%s' at '%s'", e.Name, at)
	case UnknownArg:
		return fmt.Sprintf("unknown argument '%s' at '%s'", e.Name, at)
	case MissingArgValue:
		return fmt.Sprintf("missing value for argument '%s' at '%s'", e.Name, at)
	case UnexpectedArgValue:
		return fmt.Sprintf("unexpected value for flag argument '%s' at '%s'", e.Name, at)
	case MissingValue:
		return fmt.Sprintf("missing value for command '%s' at '%s'", e.Name, at)
	default:
		return fmt.Sprintf("help requested at '%s'", at)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func newParseError(kind ErrorKind, path []string, name string) *ParseError {
	return &ParseError{Kind: kind, Path: path, Name: name}
}

// IsHelp reports whether err is, or wraps, a help request.
func IsHelp(err error) bool {
	return errors.Is(err, ErrHelpRequested)
}
