package erracc

// FieldScope records one or more validation attempts against a single field.
// All attempts share the field's path. Obtain one with BeginField on a struct
// scope or the Accumulator, and finish it exactly once.
type FieldScope struct {
	s scope
}

// Path returns the field's path.
func (f *FieldScope) Path() SourcePath { return f.s.path }

// AddResult records an attempt: its value on success, otherwise its error at
// the field's path.
func (f *FieldScope) AddResult(o Outcome) *FieldScope {
	f.s.recordOutcome(f.s.path, o)
	return f
}

// AddValue records a value that needs no validation.
func (f *FieldScope) AddValue(v any) *FieldScope {
	f.s.guard()
	f.s.record(f.s.path, v, nil)
	return f
}

// ValidatePrevious runs c over all values recorded so far in this field if no
// attempt failed yet. Otherwise c is not called and a placeholder is recorded
// so that later positions are unaffected.
func (f *FieldScope) ValidatePrevious(c Checker) *FieldScope {
	f.s.validatePrevious(c)
	return f
}

// Finish reports the single recorded value to the parent. It is a contract
// violation to call Finish when more or fewer than one value was recorded; use
// FinishWith instead.
func (f *FieldScope) Finish() {
	f.s.report(Nth[any](1, 0))
}

// FinishWith reports the result of b over all recorded values to the parent,
// or the field's errors if any attempt failed.
func (f *FieldScope) FinishWith(b Builder) {
	f.s.report(b)
}
