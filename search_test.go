package esendpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchEndpointNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"async_search.submit",
		"eql.search",
		"msearch",
		"msearch_template",
		"render_search_template",
		"search",
		"search_template",
		"terms_enum",
	}, SearchEndpointNames())

	assert.True(t, isSearchEndpointName("msearch"))
	assert.False(t, isSearchEndpointName("scroll"))
	assert.False(t, isSearchEndpointName("search_application.search"))
	assert.False(t, isSearchEndpointName(""))
}
