package erracc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/erracc"
)

func TestConstruct_Arities(t *testing.T) {
	assert.Equal(t, 0, erracc.Construct0(func() int { return 0 }).Arity())
	assert.Equal(t, 3, erracc.Construct3(func(a, b, c int) int { return a + b + c }).Arity())
	assert.Equal(t, 12, erracc.Construct12(func(a, b, c, d, e, f, g, h, i, j, k, l int) int {
		return a + b + c + d + e + f + g + h + i + j + k + l
	}).Arity())
	assert.Equal(t, 1, erracc.Check1(func(int) (bool, error) { return true, nil }).Arity())
	assert.Equal(t, 5, erracc.Nth[int](5, 4).Arity())
}

func TestConstruct_TwelveFields(t *testing.T) {
	acc := erracc.New()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		acc.Field(n(name), erracc.Ok(1))
	}

	sum, err := erracc.AnalyseWith(acc, erracc.Construct12(func(a, b, c, d, e, f, g, h, i, j, k, l int) int {
		return a + b + c + d + e + f + g + h + i + j + k + l
	}))
	require.NoError(t, err)
	assert.Equal(t, 12, sum)
}

func TestConstruct_Zero(t *testing.T) {
	got, err := erracc.AnalyseWith(erracc.New(), erracc.Construct0(func() string { return "empty" }))
	require.NoError(t, err)
	assert.Equal(t, "empty", got)
}

func TestConstruct_InterfaceOutput(t *testing.T) {
	acc := erracc.New().Field(n("v"), erracc.Ok[error](nil))

	got, err := erracc.AnalyseWith(acc, erracc.Nth[error](1, 0))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheck_ThreeValues(t *testing.T) {
	errSum := errors.New("sum too large")
	limit := erracc.Check3(func(a, b, c uint64) (uint64, error) {
		if a+b+c > 10 {
			return 0, errSum
		}
		return a + b + c, nil
	})

	acc := erracc.New()
	acc.Field(n("a"), parseU32("5"))
	acc.Field(n("b"), parseU32("5"))
	acc.Field(n("c"), parseU32("5"))
	acc.ValidatePrevious(limit)

	_, err := acc.Analyse()
	accErr, ok := erracc.AsAccumulated(err)
	require.True(t, ok)
	require.Equal(t, 1, accErr.Len())
	assert.True(t, accErr.Entries()[0].Path.IsRoot())
	assert.ErrorIs(t, accErr.Entries()[0].Err, errSum)
}

func TestResult(t *testing.T) {
	ok := erracc.Ok(3)
	assert.True(t, ok.IsOk())
	v, err := ok.Unpack()
	assert.Equal(t, 3, v)
	assert.NoError(t, err)

	failed := erracc.Fail[int](errNotEven)
	assert.False(t, failed.IsOk())

	doubled := erracc.Then(ok, func(v int) (int, error) { return v * 2, nil })
	assert.Equal(t, 6, doubled.Value)

	called := false
	chained := erracc.Then(failed, func(v int) (string, error) {
		called = true
		return "", nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, chained.Err, errNotEven)

	results := erracc.MapResults([]string{"1", "x"}, func(s string) (uint64, error) { return parseU32(s).Unpack() })
	require.Len(t, results, 2)
	assert.True(t, results[0].IsOk())
	assert.False(t, results[1].IsOk())
}
