package esendpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	r, err := NewRoute("/_nodes/{node_id}/stats/{metric}/{index_metric}")
	require.NoError(t, err)
	assert.Equal(t, "/_nodes/{node_id}/stats/{metric}/{index_metric}", r.Template())
	assert.Equal(t, []string{"node_id", "metric", "index_metric"}, r.PathPartNames())
	assert.Equal(t, `^/_nodes/(?<node0id>[^/]+)/stats/(?<metric>[^/]+)/(?<index0metric>[^/]+)$`, r.Pattern().String())

	type part struct{ name, value string }
	var parts []part
	ok := r.match("/_nodes/n1,n2/stats/indices/docs", func(name, value string) {
		parts = append(parts, part{name, value})
	})
	require.True(t, ok)
	assert.Equal(t, []part{
		{"node_id", "n1,n2"},
		{"metric", "indices"},
		{"index_metric", "docs"}}, parts)

	called := false
	ok = r.match("/_nodes/n1/stats", func(string, string) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestRouteNoPathParts(t *testing.T) {
	t.Parallel()

	r, err := NewRoute("/_cluster/health")
	require.NoError(t, err)
	assert.Empty(t, r.PathPartNames())
	assert.True(t, r.match("/_cluster/health", func(string, string) {
		t.Fatal("unexpected path part")
	}))
}

func TestRouteValuesAreRaw(t *testing.T) {
	t.Parallel()

	r, err := NewRoute("/{index}/_doc/{id}")
	require.NoError(t, err)
	parts := map[string]string{}
	require.True(t, r.match("/my%2Dindex/_doc/ a+b ", func(name, value string) {
		parts[name] = value
	}))
	assert.Equal(t, map[string]string{
		"index": "my%2Dindex",
		"id":    " a+b "}, parts)
}
