package erracc_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/erracc"
)

var errNotEven = errors.New("not even")

func even(v uint64) (uint64, error) {
	if v%2 != 0 {
		return 0, errNotEven
	}
	return v, nil
}

func TestFieldScope_MultipleAttempts(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		acc := erracc.New()
		acc.BeginField(n("foo")).
			AddResult(parseU32("42")).
			AddResult(erracc.From(nonZero(42))).
			FinishWith(erracc.Nth[uint64](2, 0))

		vals, err := acc.Analyse()
		require.NoError(t, err)
		assert.Equal(t, uint64(42), erracc.Get[uint64](vals, 0))
	})

	t.Run("every failing attempt is recorded at the field path", func(t *testing.T) {
		acc := erracc.New()
		acc.BeginField(n("foo")).
			AddResult(parseU32("nope")).
			AddResult(erracc.From(nonZero(0))).
			FinishWith(erracc.Nth[uint64](2, 0))

		_, err := acc.Analyse()
		accErr, ok := erracc.AsAccumulated(err)
		require.True(t, ok)
		require.Equal(t, 2, accErr.Len())
		for _, e := range accErr.Entries() {
			assert.Equal(t, "foo", e.Path.String())
		}
		var numErr *strconv.NumError
		assert.ErrorAs(t, accErr.Entries()[0].Err, &numErr)
		assert.ErrorAs(t, accErr.Entries()[1].Err, new(zeroError))
	})
}

func TestFieldScope_AddValue(t *testing.T) {
	acc := erracc.New()
	f := acc.BeginField(n("id"))
	assert.Equal(t, "id", f.Path().String())
	f.AddValue("fixed").Finish()

	vals, err := acc.Analyse()
	require.NoError(t, err)
	assert.Equal(t, "fixed", erracc.Get[string](vals, 0))
}

func TestFieldScope_ValidatePrevious(t *testing.T) {
	t.Run("runs over recorded values", func(t *testing.T) {
		var seen uint64
		acc := erracc.New()
		acc.BeginField(n("num")).
			AddResult(parseU32("8")).
			ValidatePrevious(erracc.Check1(func(v uint64) (uint64, error) {
				seen = v
				return even(v)
			})).
			FinishWith(erracc.Nth[uint64](2, 1))

		vals, err := acc.Analyse()
		require.NoError(t, err)
		assert.Equal(t, uint64(8), seen)
		assert.Equal(t, uint64(8), erracc.Get[uint64](vals, 0))
	})

	t.Run("records failure at the field path", func(t *testing.T) {
		acc := erracc.New()
		acc.BeginField(n("num")).
			AddResult(parseU32("7")).
			ValidatePrevious(erracc.Check1(even)).
			FinishWith(erracc.Nth[uint64](2, 0))

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		require.Equal(t, 1, accErr.Len())
		assert.Equal(t, "num", accErr.Entries()[0].Path.String())
		assert.ErrorIs(t, accErr.Entries()[0].Err, errNotEven)
	})

	t.Run("skipped after an earlier failure", func(t *testing.T) {
		called := false
		acc := erracc.New()
		acc.BeginField(n("num")).
			AddResult(parseU32("x")).
			ValidatePrevious(erracc.Check1(func(v uint64) (uint64, error) {
				called = true
				return v, nil
			})).
			AddResult(parseU32("y")).
			FinishWith(erracc.Nth[uint64](3, 0))

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		assert.False(t, called)
		assert.Equal(t, 2, accErr.Len())
	})
}
