package erracc

// Container is implemented by the scopes that can hold named children: the
// Accumulator and StructScope.
type Container interface {
	base() *scope
}

// StructScope records the results of a nested object. Children are addressed
// relative to the struct's own path.
type StructScope struct {
	s scope
}

func (st *StructScope) base() *scope { return &st.s }

// Path returns the struct's path.
func (st *StructScope) Path() SourcePath { return st.s.path }

// Field records a single attempt for the field name. It is equivalent to
// BeginField(name).AddResult(o).Finish().
func (st *StructScope) Field(name FieldName, o Outcome) *StructScope {
	st.BeginField(name).AddResult(o).Finish()
	return st
}

// BeginField opens a FieldScope for name. The struct accepts no other
// recording until the field scope is finished.
func (st *StructScope) BeginField(name FieldName) *FieldScope { return beginField(&st.s, name) }

// BeginStruct opens a nested StructScope for name.
func (st *StructScope) BeginStruct(name FieldName) *StructScope { return beginStruct(&st.s, name) }

// ValidatePrevious runs c over all values recorded so far in this struct if
// neither a field nor a nested scope of it failed yet. Otherwise c is not
// called and a placeholder is recorded. An error returned by c is recorded at
// the struct's path.
func (st *StructScope) ValidatePrevious(c Checker) *StructScope {
	st.s.validatePrevious(c)
	return st
}

// Finish reports the recorded values as a Values tuple to the parent.
func (st *StructScope) Finish() {
	vals, errs := st.s.tuple()
	st.s.parent.childFinished(vals, errs)
}

// FinishWith reports the result of b over all recorded values to the parent.
// If anything in the struct or below it failed, the union of all those errors
// is reported instead and b is not called.
func (st *StructScope) FinishWith(b Builder) {
	st.s.report(b)
}

func beginField(s *scope, name FieldName) *FieldScope {
	s.openChild()
	return &FieldScope{s: newScope(s, s.child(name), s.log)}
}

func beginStruct(s *scope, name FieldName) *StructScope {
	s.openChild()
	return &StructScope{s: newScope(s, s.child(name), s.log)}
}
