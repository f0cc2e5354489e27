package esendpoints

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// An AttributeSink receives the attributes extracted from a request path. Spans are the usual sink.
type AttributeSink interface {
	SetAttribute(key, value string)
}

// AttributeSinkFunc adapts a function to an AttributeSink.
type AttributeSinkFunc func(key, value string)

// SetAttribute calls f(key, value).
func (f AttributeSinkFunc) SetAttribute(key, value string) {
	f(key, value)
}

// MapSink collects attributes into a map.
type MapSink map[string]string

// SetAttribute stores value under key.
func (m MapSink) SetAttribute(key, value string) {
	m[key] = value
}

type spanSink struct {
	span trace.Span
}

func (s spanSink) SetAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// SpanSink returns an AttributeSink which sets string attributes on an OpenTelemetry span.
func SpanSink(span trace.Span) AttributeSink {
	return spanSink{span: span}
}
