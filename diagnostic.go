package latex

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInputTooLarge is returned when input exceeds one of the configured limits, it is the only condition which
// aborts conversion.
var ErrInputTooLarge = errors.New("input is too large")

type DiagnosticKind int

const (
	UnterminatedGroup DiagnosticKind = iota
	UnterminatedEnvironment
	MismatchedEnvironment
	UnexpectedGroupClose
	UnrecognizedCommand
	DepthExceeded
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnterminatedGroup:
		return "unterminated group"
	case UnterminatedEnvironment:
		return "unterminated environment"
	case MismatchedEnvironment:
		return "mismatched environment"
	case UnexpectedGroupClose:
		return "unexpected group close"
	case UnrecognizedCommand:
		return "unrecognized command"
	case DepthExceeded:
		return "nesting depth exceeded"
	default:
		return "unknown"
	}
}

// Diagnostic reports a malformed input condition which was recovered from. Name is the environment or command
// the condition relates to, if any.
type Diagnostic struct {
	Kind DiagnosticKind
	Name string
}

func (d Diagnostic) Error() string {
	if d.Name == "" {
		return d.Kind.String()
	}

	return fmt.Sprintf("%s %#v", d.Kind, d.Name)
}

// Informational is true for conditions which are tolerated by design and do not indicate broken markup.
func (d Diagnostic) Informational() bool {
	return d.Kind == UnrecognizedCommand
}
