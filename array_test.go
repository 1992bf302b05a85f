package erracc_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/erracc"
)

var errNoHost = errors.New("missing host")

func parseHostURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errNoHost
	}
	return u, nil
}

func TestArrayScope_Values(t *testing.T) {
	acc := erracc.New()
	arr := erracc.BeginArray[uint64](acc, n("nums"))
	assert.Equal(t, "nums", arr.Path().String())
	arr.AddValues(erracc.MapResults([]string{"1", "2", "3"}, func(s string) (uint64, error) {
		return parseU32(s).Unpack()
	})...)
	assert.Equal(t, 3, arr.Len())
	arr.Finish()

	got, err := erracc.AnalyseWith(acc, erracc.Construct1(func(v []uint64) []uint64 { return v }))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)
}

func TestArrayScope_FailingElements(t *testing.T) {
	raw := []string{"https://example.com", "example.org", "not a url"}

	acc := erracc.New()
	arr := erracc.BeginArray[*url.URL](acc, n("hosts"))
	arr.AddValues(erracc.MapResults(raw, parseHostURL)...)
	arr.Finish()

	_, err := acc.Analyse()
	accErr, ok := erracc.AsAccumulated(err)
	require.True(t, ok)

	var paths []string
	for p := range accErr.All() {
		paths = append(paths, p.String())
	}
	assert.Equal(t, []string{"hosts[1]", "hosts[2]"}, paths)
}

func TestArrayScope_Empty(t *testing.T) {
	acc := erracc.New()
	erracc.BeginArray[string](acc, n("tags")).Finish()

	vals, err := acc.Analyse()
	require.NoError(t, err)
	tags := erracc.Get[[]string](vals, 0)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

type endpoint struct {
	name string
	port uint64
}

func TestAddStructs(t *testing.T) {
	type rawEndpoint struct{ name, port string }

	record := func(s *erracc.StructScope, item rawEndpoint) {
		s.Field(n("name"), erracc.Ok(item.name))
		s.Field(n("port"), parseU32(item.port))
		s.FinishWith(erracc.Construct2(func(name string, port uint64) endpoint {
			return endpoint{name: name, port: port}
		}))
	}

	t.Run("ok", func(t *testing.T) {
		acc := erracc.New()
		arr := erracc.BeginArray[endpoint](acc, n("endpoints"))
		erracc.AddStructs(arr, []rawEndpoint{{"a", "80"}, {"b", "443"}}, record)
		arr.Finish()

		got, err := erracc.AnalyseWith(acc, erracc.Nth[[]endpoint](1, 0))
		require.NoError(t, err)
		assert.Equal(t, []endpoint{{"a", 80}, {"b", 443}}, got)
	})

	t.Run("errors are index tagged", func(t *testing.T) {
		acc := erracc.New()
		s := acc.BeginStruct(n("svc"))
		arr := erracc.BeginArray[endpoint](s, n("endpoints"))
		erracc.AddStructs(arr, []rawEndpoint{{"a", "x"}, {"b", "443"}, {"c", "y"}}, record)
		arr.Finish()
		s.Finish()

		_, err := acc.Analyse()
		accErr, _ := erracc.AsAccumulated(err)
		var paths []string
		for p := range accErr.All() {
			paths = append(paths, p.String())
		}
		assert.Equal(t, []string{"svc.endpoints[0].port", "svc.endpoints[2].port"}, paths)
	})
}

func TestArrayScope_AddElement(t *testing.T) {
	acc := erracc.New()
	arr := erracc.BeginArray[int](acc, n("sparse"))
	arr.AddElement(4, erracc.Ok(1))
	arr.AddElement(9, erracc.Fail[int](errors.New("bad")))
	assert.Equal(t, "sparse[9]", arr.ElementPath(9).String())
	arr.Finish()

	_, err := acc.Analyse()
	accErr, _ := erracc.AsAccumulated(err)
	require.Equal(t, 1, accErr.Len())
	assert.Equal(t, "sparse[9]", accErr.Entries()[0].Path.String())
}
