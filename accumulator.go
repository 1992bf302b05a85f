package erracc

import (
	"io"
	"log/slog"
)

// Accumulator is the entry point for recording parsing results. Every result
// is tracked, successes and failures alike.
//
// Use Field, BeginField, BeginStruct and BeginArray to tell the accumulator
// where in the input the next results come from. Analyse returns all errors if
// at least one was recorded anywhere, otherwise the recorded values in
// recording order.
type Accumulator struct {
	s scope
}

// Option configures an Accumulator.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger routes debug records about recorded errors, skipped validations
// and the final analysis to l. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// New returns an empty Accumulator rooted at the empty path.
func New(opts ...Option) *Accumulator {
	o := options{log: discardLogger}
	for _, opt := range opts {
		opt(&o)
	}
	return &Accumulator{s: newScope(nil, Root(), o.log)}
}

func (a *Accumulator) base() *scope { return &a.s }

// Field records a single attempt for the top-level field name.
func (a *Accumulator) Field(name FieldName, o Outcome) *Accumulator {
	a.BeginField(name).AddResult(o).Finish()
	return a
}

// BeginField opens a FieldScope for the top-level field name.
func (a *Accumulator) BeginField(name FieldName) *FieldScope { return beginField(&a.s, name) }

// BeginStruct opens a StructScope for the top-level field name.
func (a *Accumulator) BeginStruct(name FieldName) *StructScope { return beginStruct(&a.s, name) }

// ValidatePrevious runs c over all top-level values recorded so far if no
// error was recorded yet. Otherwise c is not called and a placeholder is
// recorded. An error returned by c is recorded at the root path.
func (a *Accumulator) ValidatePrevious(c Checker) *Accumulator {
	a.s.validatePrevious(c)
	return a
}

// Errors returns the number of errors recorded so far.
func (a *Accumulator) Errors() int { return a.s.errs.Len() }

// Analyse finishes the accumulator. If at least one error was recorded it
// returns them as *AccumulatedError, otherwise all top-level values in
// recording order.
func (a *Accumulator) Analyse() (Values, error) {
	vals, errs := a.s.tuple()
	a.logAnalysis(errs)
	if errs != nil {
		return Values{}, errs
	}
	return vals, nil
}

// AnalyseWith is like Analyse but builds the result with c from the recorded
// values.
func AnalyseWith[Out any](a *Accumulator, c Constructor[Out]) (Out, error) {
	out, errs := a.s.finish(c)
	a.logAnalysis(errs)
	if errs != nil {
		var zero Out
		return zero, errs
	}
	typed, _ := out.(Out)
	return typed, nil
}

func (a *Accumulator) logAnalysis(errs *AccumulatedError) {
	a.s.log.Debug("erracc: analysed",
		slog.Int("values", len(a.s.slots)),
		slog.Int("errors", errs.Len()),
	)
}
