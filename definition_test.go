package esendpoints

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathPartNameRe = regexp.MustCompile(`\{([^}]+)\}`)

// filledPath fills each path part of a template with its own name: "/{index}/_doc/{id}" becomes "/index/_doc/id"
func filledPath(template string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(template)
}

func TestAddPathPartAttributesAllRoutes(t *testing.T) {
	t.Parallel()

	for _, d := range DefaultRegistry().AllEndpoints() {
		for _, r := range d.Routes() {
			expected := MapSink{}
			for _, m := range pathPartNameRe.FindAllStringSubmatch(r.Template(), -1) {
				expected[PathPartAttribute(m[1])] = m[1]
			}

			observed := MapSink{}
			d.AddPathPartAttributes(filledPath(r.Template()), observed)
			assert.Equal(t, expected, observed, "%s %s", d.Name(), r.Template())
		}
	}
}

func TestAddPathPartAttributesSearch(t *testing.T) {
	t.Parallel()

	d, err := DefaultRegistry().Get("search")
	require.NoError(t, err)

	observed := MapSink{}
	d.AddPathPartAttributes("/test-index-1,test-index-2/_search", observed)
	assert.Equal(t, MapSink{
		"db.elasticsearch.path_parts.index": "test-index-1,test-index-2"}, observed)
}

func TestAddPathPartAttributesFirstMatchWins(t *testing.T) {
	t.Parallel()

	d, err := NewEndpointDefinition("test", "/{a}/_doc", "/{b}/{c}", "/x/{d}")
	require.NoError(t, err)

	observed := MapSink{}
	require.True(t, d.AddPathPartAttributes("/x/_doc", observed))
	assert.Equal(t, MapSink{
		"db.elasticsearch.path_parts.a": "x"}, observed)

	observed = MapSink{}
	d.AddPathPartAttributes("/x/y", observed)
	assert.Equal(t, MapSink{
		"db.elasticsearch.path_parts.b": "x",
		"db.elasticsearch.path_parts.c": "y"}, observed, "the earlier, less specific route is preferred")
}

func TestAddPathPartAttributesNoMatch(t *testing.T) {
	t.Parallel()

	d, err := DefaultRegistry().Get("indices.create")
	require.NoError(t, err)

	sink := AttributeSinkFunc(func(key, value string) {
		t.Errorf("unexpected attribute %s=%s", key, value)
	})
	assert.False(t, d.AddPathPartAttributes("/", sink))
	assert.False(t, d.AddPathPartAttributes("/foo/bar", sink))
	assert.False(t, d.AddPathPartAttributes("", sink))
}

func TestPathParts(t *testing.T) {
	t.Parallel()

	d, err := DefaultRegistry().Get("snapshot.clone")
	require.NoError(t, err)

	parts, ok := d.PathParts("/_snapshot/backups/nightly/_clone/copy")
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"repository":      "backups",
		"snapshot":        "nightly",
		"target_snapshot": "copy"}, parts)

	parts, ok = d.PathParts("/_snapshot/backups")
	assert.False(t, ok)
	assert.Nil(t, parts)
}

func TestNewEndpointDefinition(t *testing.T) {
	t.Parallel()

	d, err := NewEndpointDefinition("search", "/_search", "/{index}/_search")
	require.NoError(t, err)
	assert.Equal(t, "search", d.Name())
	assert.True(t, d.IsSearchEndpoint())
	require.Len(t, d.Routes(), 2)
	assert.Equal(t, "/_search", d.Routes()[0].Template())
	assert.Equal(t, "/{index}/_search", d.Routes()[1].Template())

	// Routes are copied out
	d.Routes()[0] = Route{}
	assert.Equal(t, "/_search", d.Routes()[0].Template())

	// The search flag comes from the name, not the routes
	d, err = NewEndpointDefinition("fleet.search", "/{index}/_fleet/_fleet_search")
	require.NoError(t, err)
	assert.False(t, d.IsSearchEndpoint())

	d, err = NewEndpointDefinition("no_routes")
	require.NoError(t, err)
	assert.Empty(t, d.Routes())
	d.AddPathPartAttributes("/", AttributeSinkFunc(func(string, string) {
		t.Error("unexpected attribute")
	}))
}

func TestNewEndpointDefinitionMalformed(t *testing.T) {
	t.Parallel()

	d, err := NewEndpointDefinition("broken", "/_ok", "/{index/_search")
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, IsMalformedTable(err))
}

func BenchmarkAddPathPartAttributes(b *testing.B) {
	d, err := DefaultRegistry().Get("nodes.stats")
	require.NoError(b, err)
	sink := AttributeSinkFunc(func(string, string) {})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.AddPathPartAttributes("/_nodes/node-1/stats/indices/docs", sink)
	}
}
