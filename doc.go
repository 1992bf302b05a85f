// Package erracc accumulates validation results across a hierarchical input
// instead of returning on the first error.
//
// The input is walked through all its fields, structs and arrays. Along the way
// every parsing or validation result is recorded with the SourcePath of its
// origin. If all results were successful the validated output is constructed;
// if at least one failed, all failures and their paths are returned as an
// *AccumulatedError.
//
// Design policy:
//   - Scopes (Accumulator, StructScope, FieldScope, ArrayScope) are single-use
//     handles. A scope that opened a child accepts nothing until the child is
//     finished, and a finished scope accepts nothing at all. Misuse panics
//     with a *ContractError; it is never mixed with recorded errors.
//   - A scope holding an error, directly or through a child, never yields a
//     value. Siblings are still recorded; only ValidatePrevious is skipped,
//     and only within its own scope.
//   - Errors keep recording order. A child's errors are merged as a block when
//     the child finishes.
//
// Typical usage:
//
//	var (
//	    interval = erracc.MustFieldName("interval")
//	    hosts    = erracc.MustFieldName("hosts")
//	    url      = erracc.MustFieldName("url")
//	)
//
//	acc := erracc.New()
//	acc.Field(interval, erracc.From(time.ParseDuration(raw.Interval)))
//	arr := erracc.BeginArray[Host](acc, hosts)
//	erracc.AddStructs(arr, raw.Hosts, func(s *erracc.StructScope, h RawHost) {
//	    s.Field(url, erracc.From(rules.URL(h.URL)))
//	    s.FinishWith(erracc.Construct1(NewHost))
//	})
//	arr.Finish()
//	cfg, err := erracc.AnalyseWith(acc, erracc.Construct2(NewConfig))
package erracc
