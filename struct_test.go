package erracc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/erracc"
)

type pet struct {
	age  uint64
	kind string
}

func newPet(age uint64, kind string) pet { return pet{age: age, kind: kind} }

func TestStructScope_Nested(t *testing.T) {
	acc := erracc.New()
	s := acc.BeginStruct(n("pet"))
	assert.Equal(t, "pet", s.Path().String())
	s.Field(n("age"), parseU32("42"))
	s.Field(n("kind"), erracc.Ok("dog"))
	s.FinishWith(erracc.Construct2(newPet))

	got, err := erracc.AnalyseWith(acc, erracc.Construct1(func(p pet) string {
		return fmt.Sprintf("%d|%s", p.age, p.kind)
	}))
	require.NoError(t, err)
	assert.Equal(t, "42|dog", got)
}

func TestStructScope_NestedErrorPath(t *testing.T) {
	acc := erracc.New()
	outer := acc.BeginStruct(n("outer"))
	inner := outer.BeginStruct(n("inner"))
	inner.Field(n("name"), erracc.Fail[string](errors.New("empty")))
	inner.Finish()
	outer.Finish()

	_, err := acc.Analyse()
	accErr, ok := erracc.AsAccumulated(err)
	require.True(t, ok)
	require.Equal(t, 1, accErr.Len())
	assert.Equal(t, "outer.inner.name", accErr.Entries()[0].Path.String())
}

func TestStructScope_ConstructorNotCalledOnDescendantError(t *testing.T) {
	called := false
	acc := erracc.New()
	s := acc.BeginStruct(n("pet"))
	s.Field(n("age"), parseU32("old"))
	s.Field(n("kind"), erracc.Ok("cat"))
	s.FinishWith(erracc.Construct2(func(age uint64, kind string) pet {
		called = true
		return newPet(age, kind)
	}))
	acc.Field(n("other"), erracc.Ok(1))

	_, err := acc.Analyse()
	require.Error(t, err)
	assert.False(t, called)
}

func TestStructScope_ValidatePrevious(t *testing.T) {
	errRange := errors.New("min must not exceed max")
	ordered := erracc.Check2(func(lo, hi uint64) (struct{}, error) {
		if lo > hi {
			return struct{}{}, errRange
		}
		return struct{}{}, nil
	})

	t.Run("error at struct path", func(t *testing.T) {
		acc := erracc.New()
		s := acc.BeginStruct(n("range"))
		s.Field(n("min"), parseU32("9"))
		s.Field(n("max"), parseU32("3"))
		s.ValidatePrevious(ordered)
		s.FinishWith(erracc.Nth[uint64](3, 0))

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		require.Equal(t, 1, accErr.Len())
		assert.Equal(t, "range", accErr.Entries()[0].Path.String())
		assert.ErrorIs(t, accErr, errRange)
	})

	t.Run("skipped when a field failed", func(t *testing.T) {
		acc := erracc.New()
		s := acc.BeginStruct(n("range"))
		s.Field(n("min"), parseU32("x"))
		s.Field(n("max"), parseU32("3"))
		s.ValidatePrevious(ordered)
		s.Field(n("step"), parseU32("y"))
		s.FinishWith(erracc.Nth[uint64](4, 1))

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		var paths []string
		for p := range accErr.All() {
			paths = append(paths, p.String())
		}
		assert.Equal(t, []string{"range.min", "range.step"}, paths)
	})

	t.Run("sibling failure does not skip", func(t *testing.T) {
		acc := erracc.New()
		acc.Field(n("before"), parseU32("bad"))
		s := acc.BeginStruct(n("range"))
		s.Field(n("min"), parseU32("9"))
		s.Field(n("max"), parseU32("3"))
		s.ValidatePrevious(ordered)
		s.FinishWith(erracc.Nth[uint64](3, 0))

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		require.Equal(t, 2, accErr.Len())
		assert.Equal(t, "range", accErr.Entries()[1].Path.String())
	})

	t.Run("root validation skipped after nested failure", func(t *testing.T) {
		called := false
		acc := erracc.New()
		s := acc.BeginStruct(n("nested"))
		s.Field(n("x"), parseU32("bad"))
		s.Finish()
		acc.ValidatePrevious(erracc.Check1(func(erracc.Values) (int, error) {
			called = true
			return 0, nil
		}))

		_, err := acc.Analyse()
		require.Error(t, err)
		assert.False(t, called)
	})
}

func TestStructScope_TupleFinish(t *testing.T) {
	acc := erracc.New()
	s := acc.BeginStruct(n("pair"))
	s.Field(n("a"), erracc.Ok("left"))
	s.Field(n("b"), erracc.Ok("right"))
	s.Finish()

	vals, err := acc.Analyse()
	require.NoError(t, err)
	pair := erracc.Get[erracc.Values](vals, 0)
	assert.Equal(t, []any{"left", "right"}, pair.Slice())
	assert.Equal(t, "[left right]", pair.String())
}
