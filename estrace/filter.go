package estrace

import (
	"github.com/monzo/typhon"
)

// NewFilter vends a typhon.Filter which wraps each request to Elasticsearch in a client span, exactly as Transport
// does for net/http clients:
//
//	svc := typhon.Client.Filter(estrace.NewFilter())
//	rsp := typhon.NewRequest(estrace.WithEndpoint(ctx, "search"), "POST", url+"/logs/_search", query).SendVia(svc).Response()
func NewFilter(opts ...Option) typhon.Filter {
	in := newInstrumentation(opts)
	return func(req typhon.Request, svc typhon.Service) typhon.Response {
		httpReq, span, err := in.start(req.Request.WithContext(req.Context))
		defer span.End()
		if err != nil {
			in.end(span, 0, err)
			return typhon.Response{
				Request: &req,
				Error:   err}
		}
		req.Request = *httpReq
		req.Context = httpReq.Context()

		rsp := svc(req)
		status := 0
		if rsp.Response != nil {
			status = rsp.StatusCode
		}
		in.end(span, status, rsp.Error)
		return rsp
	}
}
