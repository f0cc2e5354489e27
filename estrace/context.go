package estrace

import "context"

type endpointKey struct{}

// WithEndpoint returns a context which names the Elasticsearch endpoint (eg. "search" or "indices.create") that a
// request made with it calls. Transport uses the name to look up how to interpret the request path.
func WithEndpoint(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, endpointKey{}, name)
}

// EndpointFromContext returns the endpoint name set by WithEndpoint, if any.
func EndpointFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(endpointKey{}).(string)
	return name, ok && name != ""
}
