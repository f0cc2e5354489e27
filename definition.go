package esendpoints

import (
	"github.com/monzo/terrors"
)

// PathPartAttributePrefix prefixes the name of a path part to form its span attribute key.
const PathPartAttributePrefix = "db.elasticsearch.path_parts."

// PathPartAttribute returns the span attribute key for the named path part.
func PathPartAttribute(name string) string {
	return PathPartAttributePrefix + name
}

// An EndpointDefinition describes a single Elasticsearch API operation (eg. "search" or "indices.create") and the
// path shapes it can be called through. Definitions are immutable and safe for concurrent use.
type EndpointDefinition struct {
	name     string
	isSearch bool
	routes   []Route
}

// NewEndpointDefinition vends a definition for the named endpoint, compiling each of its route templates. Whether the
// endpoint is a search endpoint follows from its name alone.
func NewEndpointDefinition(name string, templates ...string) (*EndpointDefinition, error) {
	routes := make([]Route, 0, len(templates))
	for _, t := range templates {
		r, err := NewRoute(t)
		if err != nil {
			return nil, terrors.Wrap(err, map[string]string{
				"endpoint": name})
		}
		routes = append(routes, r)
	}
	return &EndpointDefinition{
		name:     name,
		isSearch: isSearchEndpointName(name),
		routes:   routes}, nil
}

// Name returns the endpoint's identifier.
func (d *EndpointDefinition) Name() string {
	return d.name
}

// IsSearchEndpoint returns whether the endpoint performs a search, and hence whether its request body is a query.
func (d *EndpointDefinition) IsSearchEndpoint() bool {
	return d.isSearch
}

// Routes returns the endpoint's routes in match order.
func (d *EndpointDefinition) Routes() []Route {
	routes := make([]Route, len(d.routes))
	copy(routes, d.routes)
	return routes
}

// AddPathPartAttributes writes an attribute to sink for each path part of the first route whose shape matches path.
// Routes are tried in order and are not scored for specificity.
//
// It is not an error for no route to match: plenty of calls use path forms that carry no parts at all. In that case
// nothing is written and false is returned.
func (d *EndpointDefinition) AddPathPartAttributes(path string, sink AttributeSink) bool {
	for _, r := range d.routes {
		if r.match(path, func(name, value string) {
			sink.SetAttribute(PathPartAttribute(name), value)
		}) {
			return true
		}
	}
	return false
}

// PathParts returns the path parts of the first route matching path, keyed by their template names. The boolean
// return is false if no route matched.
func (d *EndpointDefinition) PathParts(path string) (map[string]string, bool) {
	parts := map[string]string{}
	for _, r := range d.routes {
		if r.match(path, func(name, value string) {
			parts[name] = value
		}) {
			return parts, true
		}
	}
	return nil, false
}
