package esendpoints

import (
	"testing"

	"github.com/monzo/terrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPattern(t *testing.T) {
	t.Parallel()

	cases := []struct {
		template string
		pattern  string
		captures map[string]string
	}{
		{
			template: "/_nodes/{node_id}/shutdown",
			pattern:  `^/_nodes/(?<node0id>[^/]+)/shutdown$`,
			captures: map[string]string{
				"node0id": "node_id"},
		},
		{
			template: "/_snapshot/{repository}/{snapshot}/_mount",
			pattern:  `^/_snapshot/(?<repository>[^/]+)/(?<snapshot>[^/]+)/_mount$`,
			captures: map[string]string{
				"repository": "repository",
				"snapshot":   "snapshot"},
		},
		{
			template: "/_security/profile/_suggest",
			pattern:  `^/_security/profile/_suggest$`,
			captures: map[string]string{},
		},
		{
			template: "/_application/search_application/{name}",
			pattern:  `^/_application/search_application/(?<name>[^/]+)$`,
			captures: map[string]string{
				"name": "name"},
		},
		{
			template: "/",
			pattern:  `^/$`,
			captures: map[string]string{},
		},
		{
			// Literals with meaning in pattern syntax are escaped
			template: "/a.b/{x-y}+",
			pattern:  `^/a\.b/(?<x0y>[^/]+)\+$`,
			captures: map[string]string{
				"x0y": "x-y"},
		}}

	for _, c := range cases {
		t.Run(c.template, func(t *testing.T) {
			t.Parallel()
			re, captures, err := BuildPattern(c.template)
			require.NoError(t, err)
			assert.Equal(t, c.pattern, re.String())
			assert.Equal(t, c.captures, captures)
		})
	}
}

func TestBuildPatternAnchored(t *testing.T) {
	t.Parallel()

	re, _, err := BuildPattern("/")
	require.NoError(t, err)
	assert.True(t, re.MatchString("/"))
	assert.False(t, re.MatchString(""))
	assert.False(t, re.MatchString("//"))
	assert.False(t, re.MatchString("/_search"))

	re, _, err = BuildPattern("/{index}/_search")
	require.NoError(t, err)
	assert.True(t, re.MatchString("/foo/_search"))
	assert.False(t, re.MatchString("/foo/_search/extra"))
	assert.False(t, re.MatchString("/prefix/foo/_search"))
	assert.False(t, re.MatchString("//_search"), "path parts are never empty")
}

func TestBuildPatternDeterministic(t *testing.T) {
	t.Parallel()

	for _, template := range []string{"/", "/_nodes/{node_id}/stats/{metric}/{index_metric}", "/_cat/thread_pool"} {
		re1, captures1, err := BuildPattern(template)
		require.NoError(t, err)
		re2, captures2, err := BuildPattern(template)
		require.NoError(t, err)
		assert.Equal(t, re1.String(), re2.String())
		assert.Equal(t, re1.SubexpNames(), re2.SubexpNames())
		assert.Equal(t, captures1, captures2)
	}
}

func TestBuildPatternMalformed(t *testing.T) {
	t.Parallel()

	for _, template := range []string{
		"/{index",
		"/{}/_search",
		"/{in{dex}/_search",
		"/index}/_search",
		"/{index}}/_search",
	} {
		t.Run(template, func(t *testing.T) {
			t.Parallel()
			re, captures, err := BuildPattern(template)
			require.Error(t, err)
			assert.Nil(t, re)
			assert.Nil(t, captures)
			assert.True(t, terrors.PrefixMatches(err, terrors.ErrInternalService, ErrMalformedTemplate), err.Error())
			assert.True(t, IsMalformedTable(err))
			assert.Equal(t, template, err.(*terrors.Error).Params["template"])
		})
	}
}

func TestBuildPatternDuplicateCapture(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"repeated name":     "/{index}/_alias/{index}",
		"sanitised clash":   "/{node_id}/{node-id}",
		"substitution char": "/{node0id}/{node_id}",
	}
	for name, template := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := BuildPattern(template)
			require.Error(t, err)
			assert.True(t, terrors.PrefixMatches(err, terrors.ErrInternalService, ErrDuplicatePathPart), err.Error())
			assert.True(t, IsMalformedTable(err))
		})
	}
}
