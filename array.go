package erracc

import "log/slog"

// ArrayScope records the elements of an array field. Element i is addressed as
// name[i] below the parent's path. On success the parent receives a []E in
// element order.
type ArrayScope[E any] struct {
	s     scope
	name  FieldName
	base  SourcePath
	elems []E
}

// BeginArray opens an ArrayScope for the array field name of c. It is a
// function rather than a method because the element type is chosen here.
func BeginArray[E any](c Container, name FieldName) *ArrayScope[E] {
	p := c.base()
	p.openChild()
	return &ArrayScope[E]{
		s:     newScope(p, p.child(name), p.log),
		name:  name,
		base:  p.path,
		elems: []E{},
	}
}

// Path returns the path of the array field itself.
func (a *ArrayScope[E]) Path() SourcePath { return a.s.path }

// ElementPath returns the path of the element at index. A negative index is a
// contract violation.
func (a *ArrayScope[E]) ElementPath(index int) SourcePath {
	if index < 0 {
		violate(ErrNegativeIndex, a.s.path, "index %d", index)
	}
	return a.base.Join(Element(a.name, index))
}

// Len returns the number of successfully recorded elements.
func (a *ArrayScope[E]) Len() int { return len(a.elems) }

// AddValues records single-value elements; the index of each element is its
// position in results.
func (a *ArrayScope[E]) AddValues(results ...Result[E]) *ArrayScope[E] {
	for i, r := range results {
		a.AddElement(i, r)
	}
	return a
}

// AddElement records the element at index. This is a low-level operation,
// consider using AddValues or AddStructs instead.
func (a *ArrayScope[E]) AddElement(index int, r Result[E]) *ArrayScope[E] {
	a.s.guard()
	path := a.ElementPath(index)
	if r.Err != nil {
		a.s.errs.Append(path, r.Err)
		a.s.log.Debug("erracc: recorded error", slog.String("path", path.String()), slog.Any("error", r.Err))
		return a
	}
	a.elems = append(a.elems, r.Value)
	return a
}

// BeginStructAt opens a StructScope for the element at index. Its finished
// value must be of type E.
func (a *ArrayScope[E]) BeginStructAt(index int) *StructScope {
	path := a.ElementPath(index)
	a.s.openChild()
	return &StructScope{s: newScope(a, path, a.s.log)}
}

func (a *ArrayScope[E]) childFinished(value any, errs *AccumulatedError) {
	a.s.open--
	if !errs.IsEmpty() {
		a.s.errs.Merge(errs)
		return
	}
	elem, ok := value.(E)
	if !ok && value != nil {
		var zero E
		violate(ErrSlotType, a.s.path, "element is %T, want %T", value, zero)
	}
	a.elems = append(a.elems, elem)
}

// Finish reports the ordered elements to the parent, or the union of every
// element's errors if at least one element failed.
func (a *ArrayScope[E]) Finish() {
	a.s.seal()
	if !a.s.errs.IsEmpty() {
		errs := a.s.errs
		a.s.parent.childFinished(nil, &errs)
		return
	}
	a.s.parent.childFinished(a.elems, nil)
}

// AddStructs opens a StructScope for every item, index-tagged by position, and
// lets fn record the item into it. fn must finish the scope it is given.
func AddStructs[E, T any](a *ArrayScope[E], items []T, fn func(s *StructScope, item T)) *ArrayScope[E] {
	for i, item := range items {
		st := a.BeginStructAt(i)
		fn(st, item)
		if !st.s.finished {
			violate(ErrNotFinished, st.s.path, "")
		}
	}
	return a
}
