package esendpoints

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// searchEndpoints is the closed set of endpoints whose request bodies are queries. It's deliberately not derived from
// route shapes: plenty of non-search endpoints have paths ending in _search.
var searchEndpoints = mapset.NewSet(
	"search",
	"async_search.submit",
	"msearch",
	"eql.search",
	"terms_enum",
	"search_template",
	"msearch_template",
	"render_search_template")

func isSearchEndpointName(name string) bool {
	return searchEndpoints.Contains(name)
}

// SearchEndpointNames returns the names of all search endpoints, sorted.
func SearchEndpointNames() []string {
	names := make([]string, 0, searchEndpoints.Cardinality())
	for _, n := range searchEndpoints.ToSlice() {
		names = append(names, n.(string))
	}
	sort.Strings(names)
	return names
}
