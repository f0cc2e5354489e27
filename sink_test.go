package esendpoints

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanSink(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "Elasticsearch: GET /_snapshot/backups/nightly")
	d, err := DefaultRegistry().Get("snapshot.get")
	require.NoError(t, err)
	d.AddPathPartAttributes("/_snapshot/backups/nightly", SpanSink(span))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("db.elasticsearch.path_parts.repository", "backups"),
		attribute.String("db.elasticsearch.path_parts.snapshot", "nightly"),
	}, spans[0].Attributes())
}

func TestAttributeSinkFunc(t *testing.T) {
	t.Parallel()

	var keys, values []string
	sink := AttributeSinkFunc(func(key, value string) {
		keys = append(keys, key)
		values = append(values, value)
	})
	d, err := DefaultRegistry().Get("indices.put_alias")
	require.NoError(t, err)
	d.AddPathPartAttributes("/logs/_alias/current", sink)

	assert.Equal(t, []string{"db.elasticsearch.path_parts.index", "db.elasticsearch.path_parts.name"}, keys,
		"attributes are written in template order")
	assert.Equal(t, []string{"logs", "current"}, values)
}
