// Package estrace instruments HTTP calls to Elasticsearch with OpenTelemetry client spans.
//
// Callers name the endpoint each request calls with WithEndpoint; the transport then records the endpoint, its path
// parts and, for search endpoints, the query body on the span:
//
//	client := &http.Client{Transport: estrace.NewTransport(http.DefaultTransport)}
//	req, _ := http.NewRequestWithContext(estrace.WithEndpoint(ctx, "search"), "POST", url+"/logs/_search", body)
//	rsp, err := client.Do(req)
//
// Typhon clients get the same spans from Filter.
package estrace

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/monzo/slog"
	"github.com/monzo/terrors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/monzo/esendpoints"
)

// TracerName is the instrumentation name spans are created under.
const TracerName = "github.com/monzo/esendpoints/estrace"

// Span attribute keys
const (
	AttrDBSystem       = "db.system"
	AttrDBOperation    = "db.operation"
	AttrDBStatement    = "db.statement"
	AttrRequestMethod  = "http.request.method"
	AttrResponseStatus = "http.response.status_code"
	AttrURLFull        = "url.full"
	AttrServerAddress  = "server.address"
	AttrServerPort     = "server.port"

	dbSystemElasticsearch = "elasticsearch"
)

// instrumentation holds what Transport and Filter share: the span lifecycle and its Elasticsearch attributes.
type instrumentation struct {
	registry          *esendpoints.Registry
	tracerProvider    trace.TracerProvider
	tracer            trace.Tracer
	captureSearchBody bool
	maxStatementBytes int
}

func newInstrumentation(opts []Option) *instrumentation {
	in := &instrumentation{
		registry:          esendpoints.DefaultRegistry(),
		captureSearchBody: true,
		maxStatementBytes: DefaultMaxStatementBytes}
	for _, opt := range opts {
		opt(in)
	}
	if in.tracerProvider == nil {
		in.tracerProvider = otel.GetTracerProvider()
	}
	in.tracer = in.tracerProvider.Tracer(TracerName)
	return in
}

// start opens a client span for req and returns a copy of req carrying the span's context. The span is always
// returned and must be ended by the caller, even if err is non-nil.
//
// Failing to identify the endpoint, or to match the path against any of its routes, only means the span carries
// fewer attributes. An error is returned only if the request body could not be read, in which case the request must
// not be sent.
func (in *instrumentation) start(req *http.Request) (*http.Request, trace.Span, error) {
	ctx, span := in.tracer.Start(req.Context(), spanName(req),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(requestAttributes(req)...))
	req = req.Clone(ctx)

	name, ok := EndpointFromContext(ctx)
	if !ok {
		return req, span, nil
	}
	// Path parts are recorded exactly as sent, so match against the escaped form
	path := req.URL.EscapedPath()
	def, ok := in.registry.Lookup(name)
	if !ok {
		slog.Debug(ctx, "Unknown Elasticsearch endpoint %s; path parts of %s not recorded", name, path)
		return req, span, nil
	}
	span.SetAttributes(attribute.String(AttrDBOperation, def.Name()))
	if !def.AddPathPartAttributes(path, esendpoints.SpanSink(span)) {
		slog.Debug(ctx, "No route of Elasticsearch endpoint %s matches %s", name, path)
	}
	if def.IsSearchEndpoint() && in.captureSearchBody {
		if err := in.captureStatement(req, span); err != nil {
			return req, span, err
		}
	}
	return req, span, nil
}

// end records the outcome of a call on span. A zero status means no response was received.
func (in *instrumentation) end(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int(AttrResponseStatus, status))
	}
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case status >= 400:
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

// captureStatement records the request body on the span, replacing req.Body with an equivalent reader so the body is
// still sent in full.
func (in *instrumentation) captureStatement(req *http.Request, span trace.Span) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	b, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		slog.Warn(req.Context(), "Error reading Elasticsearch request body: %v", err)
		return terrors.Wrap(err, nil)
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	span.SetAttributes(attribute.String(AttrDBStatement, string(truncate(b, in.maxStatementBytes))))
	return nil
}

// truncate cuts b to at most n bytes without splitting a UTF-8 sequence.
func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return b[:n]
}

// Transport is an http.RoundTripper which wraps each request to Elasticsearch in a client span.
type Transport struct {
	*instrumentation
	next http.RoundTripper
}

// NewTransport vends a Transport which sends requests via next (http.DefaultTransport if nil).
func NewTransport(next http.RoundTripper, opts ...Option) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{
		instrumentation: newInstrumentation(opts),
		next:            next}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req, span, err := t.start(req)
	defer span.End()
	if err != nil {
		t.end(span, 0, err)
		return nil, err
	}

	rsp, err := t.next.RoundTrip(req)
	if err != nil {
		t.end(span, 0, err)
		return rsp, err
	}
	t.end(span, rsp.StatusCode, nil)
	return rsp, nil
}

func spanName(req *http.Request) string {
	return "Elasticsearch: " + req.Method + " " + req.URL.EscapedPath()
}

func requestAttributes(req *http.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrDBSystem, dbSystemElasticsearch),
		attribute.String(AttrRequestMethod, req.Method),
		attribute.String(AttrURLFull, req.URL.Redacted())}
	host, port, err := net.SplitHostPort(req.URL.Host)
	if err != nil {
		host = req.URL.Host
	}
	if host != "" {
		attrs = append(attrs, attribute.String(AttrServerAddress, host))
	}
	if p, err := strconv.Atoi(port); err == nil {
		attrs = append(attrs, attribute.Int(AttrServerPort, p))
	}
	return attrs
}
