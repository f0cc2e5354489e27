package estrace

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/monzo/esendpoints"
)

// DefaultMaxStatementBytes bounds how much of a search request body is recorded as the span's statement.
const DefaultMaxStatementBytes = 10 * 1024

// An Option configures a Transport or Filter.
type Option func(*instrumentation)

// WithRegistry sets the registry endpoints are looked up in. The default is esendpoints.DefaultRegistry().
func WithRegistry(r *esendpoints.Registry) Option {
	return func(in *instrumentation) {
		in.registry = r
	}
}

// WithTracerProvider sets the provider spans are created from. The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(in *instrumentation) {
		in.tracerProvider = tp
	}
}

// WithCaptureSearchBody sets whether the request bodies of search endpoints are recorded on spans as db.statement.
// It is enabled by default.
func WithCaptureSearchBody(capture bool) Option {
	return func(in *instrumentation) {
		in.captureSearchBody = capture
	}
}

// WithMaxStatementBytes bounds the length of recorded statements; longer bodies are truncated. Non-positive values
// are ignored.
func WithMaxStatementBytes(n int) Option {
	return func(in *instrumentation) {
		if n > 0 {
			in.maxStatementBytes = n
		}
	}
}
