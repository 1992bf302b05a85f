package erracc

import (
	"errors"
	"fmt"
)

// Contract violations. These are programming defects, never data errors: they
// are raised with panic as a *ContractError and are never accumulated.
var (
	ErrScopeFinished = errors.New("erracc: scope already finished")
	ErrScopeBusy     = errors.New("erracc: scope has an open child scope")
	ErrOpenChild     = errors.New("erracc: child scope was not finished")
	ErrNotFinished   = errors.New("erracc: element scope returned unfinished")
	ErrArity         = errors.New("erracc: constructor arity does not match recorded values")
	ErrSlotType      = errors.New("erracc: recorded value has unexpected type")
	ErrNegativeIndex = errors.New("erracc: negative array index")
)

// ContractError describes a misuse of the scope state machine at a path.
type ContractError struct {
	Kind   error
	Path   SourcePath
	Detail string
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (at %s)", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v (at %s): %s", e.Kind, e.Path, e.Detail)
}

func (e *ContractError) Unwrap() error { return e.Kind }

func violate(kind error, path SourcePath, format string, args ...any) {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	panic(&ContractError{Kind: kind, Path: path, Detail: detail})
}
