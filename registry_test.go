package esendpoints

import (
	"sync"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/monzo/terrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	require.Equal(t, len(Endpoints), r.Len())
	assert.Same(t, r, DefaultRegistry())

	all := r.AllEndpoints()
	require.Len(t, all, len(Endpoints))
	for i, src := range Endpoints {
		d := all[i]
		assert.Equal(t, src.Name, d.Name(), "endpoints are kept in table order")
		require.Len(t, d.Routes(), len(src.Routes))
		for j, template := range src.Routes {
			assert.Equal(t, template, d.Routes()[j].Template())
		}

		looked, err := r.Get(src.Name)
		require.NoError(t, err)
		assert.Same(t, d, looked)
	}
}

func TestRegistryIsSearchEndpoint(t *testing.T) {
	t.Parallel()

	search := map[string]bool{
		"search":                 true,
		"async_search.submit":    true,
		"msearch":                true,
		"eql.search":             true,
		"terms_enum":             true,
		"search_template":        true,
		"msearch_template":       true,
		"render_search_template": true,
	}
	seen := 0
	for _, d := range DefaultRegistry().AllEndpoints() {
		assert.Equal(t, search[d.Name()], d.IsSearchEndpoint(), d.Name())
		if d.IsSearchEndpoint() {
			seen++
		}
	}
	assert.Equal(t, len(search), seen, "every search endpoint is in the table")
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	d, err := r.Get("indices.frobnicate")
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, IsUnknownEndpoint(err))
	assert.True(t, terrors.PrefixMatches(err, terrors.ErrNotFound))
	assert.Equal(t, "indices.frobnicate", err.(*terrors.Error).Params["endpoint"])

	d, ok := r.Lookup("indices.frobnicate")
	assert.False(t, ok)
	assert.Nil(t, d)

	d, ok = r.Lookup("indices.create")
	require.True(t, ok)
	assert.Equal(t, "indices.create", d.Name())

	assert.False(t, IsUnknownEndpoint(nil))
	assert.False(t, IsUnknownEndpoint(terrors.NotFound("other", "Something else", nil)))
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]EndpointSource{
		{Name: "b", Routes: []string{"/_b"}},
		{Name: "a", Routes: []string{"/{index}/_a"}},
		{Name: "search", Routes: []string{"/_search"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	all := r.AllEndpoints()
	assert.Equal(t, "b", all[0].Name())
	assert.Equal(t, "a", all[1].Name())
	assert.Equal(t, "search", all[2].Name())
	assert.True(t, all[2].IsSearchEndpoint())

	// Callers can't reorder the registry
	all[0], all[1] = all[1], all[0]
	assert.Equal(t, "b", r.AllEndpoints()[0].Name())

	r, err = NewRegistry(nil)
	require.NoError(t, err)
	assert.Zero(t, r.Len())
	assert.Empty(t, r.AllEndpoints())
}

func TestNewRegistryDuplicateEndpoint(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]EndpointSource{
		{Name: "a", Routes: []string{"/_a"}},
		{Name: "a", Routes: []string{"/_other_a"}},
	})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, terrors.PrefixMatches(err, terrors.ErrInternalService, ErrDuplicateEndpoint))
	assert.True(t, IsMalformedTable(err))
}

func TestNewRegistryMalformed(t *testing.T) {
	t.Parallel()

	sources := []EndpointSource{
		{Name: "ok", Routes: []string{"/_ok"}},
		{Name: "broken", Routes: []string{"/{}/_broken"}},
	}
	r, err := NewRegistry(sources)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, terrors.PrefixMatches(err, terrors.ErrInternalService, ErrMalformedTemplate))
	assert.Equal(t, "broken", err.(*terrors.Error).Params["endpoint"])
	assert.Equal(t, "/{}/_broken", err.(*terrors.Error).Params["template"])

	assert.Panics(t, func() {
		MustNewRegistry(sources)
	})
	assert.NotPanics(t, func() {
		MustNewRegistry(sources[:1])
	})
}

func TestRegistryConcurrentReads(t *testing.T) {
	defer leaktest.Check(t)()

	r := DefaultRegistry()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d, ok := r.Lookup("search")
				if !ok {
					t.Error("search endpoint missing")
					return
				}
				sink := MapSink{}
				d.AddPathPartAttributes("/logs-2024/_search", sink)
				if sink["db.elasticsearch.path_parts.index"] != "logs-2024" {
					t.Errorf("unexpected attributes %v", sink)
					return
				}
				_ = r.AllEndpoints()
			}
		}()
	}
	wg.Wait()
}

func BenchmarkRegistryGet(b *testing.B) {
	r := DefaultRegistry()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Lookup("indices.put_mapping")
	}
}
