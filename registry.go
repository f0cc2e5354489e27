package esendpoints

import (
	"fmt"

	"github.com/monzo/terrors"
)

// An EndpointSource is one row of a trusted endpoint table: an endpoint name and its route templates in match order.
type EndpointSource struct {
	Name   string
	Routes []string
}

// A Registry holds a fixed set of endpoint definitions. It is immutable once constructed, so it may be shared freely
// between goroutines.
type Registry struct {
	endpoints []*EndpointDefinition // in source order
	byName    map[string]*EndpointDefinition
}

// defaultRegistry is built from Endpoints when the package is initialised; a malformed table panics at start-up rather
// than surfacing on some later request.
var defaultRegistry = MustNewRegistry(Endpoints)

// DefaultRegistry returns the registry of all known Elasticsearch endpoints.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry compiles every endpoint in sources into a new Registry.
//
// An error is returned if any route template is malformed or if an endpoint name appears more than once. The table
// is expected to be trusted, so callers will usually want MustNewRegistry.
func NewRegistry(sources []EndpointSource) (*Registry, error) {
	r := &Registry{
		endpoints: make([]*EndpointDefinition, 0, len(sources)),
		byName:    make(map[string]*EndpointDefinition, len(sources))}
	for _, src := range sources {
		if _, dup := r.byName[src.Name]; dup {
			return nil, terrors.InternalService(ErrDuplicateEndpoint,
				fmt.Sprintf("Endpoint %q is defined more than once", src.Name),
				map[string]string{
					"endpoint": src.Name})
		}
		d, err := NewEndpointDefinition(src.Name, src.Routes...)
		if err != nil {
			return nil, err
		}
		r.endpoints = append(r.endpoints, d)
		r.byName[d.name] = d
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics if the table is malformed.
func MustNewRegistry(sources []EndpointSource) *Registry {
	r, err := NewRegistry(sources)
	if err != nil {
		panic(err)
	}
	return r
}

// AllEndpoints returns every definition in the registry, in the order of the table it was built from.
func (r *Registry) AllEndpoints() []*EndpointDefinition {
	endpoints := make([]*EndpointDefinition, len(r.endpoints))
	copy(endpoints, r.endpoints)
	return endpoints
}

// Get returns the named endpoint's definition. If there is no such endpoint the error will satisfy
// IsUnknownEndpoint.
func (r *Registry) Get(name string) (*EndpointDefinition, error) {
	if d, ok := r.byName[name]; ok {
		return d, nil
	}
	return nil, terrors.NotFound(ErrUnknownEndpoint,
		fmt.Sprintf("No endpoint named %q", name),
		map[string]string{
			"endpoint": name})
}

// Lookup returns the named endpoint's definition and whether it was found.
func (r *Registry) Lookup(name string) (*EndpointDefinition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of endpoints in the registry.
func (r *Registry) Len() int {
	return len(r.endpoints)
}
