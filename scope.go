package erracc

import (
	"log/slog"
)

// parent receives the final result of a finished child scope.
type parent interface {
	childFinished(value any, errs *AccumulatedError)
}

// scope is the state shared by field, struct and root scopes: a path, the
// errors recorded in or merged into it and one slot per recording. A failed or
// skipped recording leaves a nil placeholder so that positions stay stable.
type scope struct {
	path     SourcePath
	errs     AccumulatedError
	slots    []any
	parent   parent
	log      *slog.Logger
	open     int
	finished bool
}

func newScope(p parent, path SourcePath, log *slog.Logger) scope {
	return scope{path: path, parent: p, log: log}
}

// guard panics when the scope can no longer record.
func (s *scope) guard() {
	if s.finished {
		violate(ErrScopeFinished, s.path, "")
	}
	if s.open > 0 {
		violate(ErrScopeBusy, s.path, "")
	}
}

func (s *scope) record(path SourcePath, value any, err error) {
	if err != nil {
		s.errs.Append(path, err)
		s.log.Debug("erracc: recorded error", slog.String("path", path.String()), slog.Any("error", err))
		s.slots = append(s.slots, nil)
		return
	}
	s.slots = append(s.slots, value)
}

func (s *scope) recordOutcome(path SourcePath, o Outcome) {
	s.guard()
	v, err := o.outcome()
	s.record(path, v, err)
}

func (s *scope) openChild() {
	s.guard()
	s.open++
}

func (s *scope) childFinished(value any, errs *AccumulatedError) {
	s.open--
	if !errs.IsEmpty() {
		s.errs.Merge(errs)
		s.slots = append(s.slots, nil)
		return
	}
	s.slots = append(s.slots, value)
}

// validatePrevious runs c over the recorded values unless the scope already
// holds an error, in which case only a placeholder is appended.
func (s *scope) validatePrevious(c Checker) {
	s.guard()
	if c.Arity() != len(s.slots) {
		violate(ErrArity, s.path, "validator takes %d values, %d recorded", c.Arity(), len(s.slots))
	}
	if !s.errs.IsEmpty() {
		s.log.Debug("erracc: skipped validation", slog.String("path", s.path.String()))
		s.slots = append(s.slots, nil)
		return
	}
	v, err := c.check(s.path, s.values())
	s.record(s.path, v, err)
}

func (s *scope) values() []any { return append([]any(nil), s.slots...) }

// seal marks the scope finished after checking that no child is still open.
func (s *scope) seal() {
	if s.finished {
		violate(ErrScopeFinished, s.path, "")
	}
	if s.open > 0 {
		violate(ErrOpenChild, s.path, "")
	}
	s.finished = true
}

// finish seals the scope and resolves it with b. The constructor only runs
// when neither the scope nor any descendant recorded an error.
func (s *scope) finish(b Builder) (any, *AccumulatedError) {
	s.seal()
	if b.Arity() != len(s.slots) {
		violate(ErrArity, s.path, "constructor takes %d values, %d recorded", b.Arity(), len(s.slots))
	}
	if !s.errs.IsEmpty() {
		errs := s.errs
		return nil, &errs
	}
	return b.build(s.path, s.values()), nil
}

func (s *scope) report(b Builder) {
	v, errs := s.finish(b)
	s.parent.childFinished(v, errs)
}

// tuple seals the scope and returns its values as a tuple.
func (s *scope) tuple() (Values, *AccumulatedError) {
	s.seal()
	if !s.errs.IsEmpty() {
		errs := s.errs
		return Values{}, &errs
	}
	return Values{items: s.values()}, nil
}

func (s *scope) child(name FieldName) SourcePath { return s.path.Join(Field(name)) }
