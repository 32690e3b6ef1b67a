package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/atomflunder/bot-dashboard/pkg/errorx"
	"github.com/atomflunder/bot-dashboard/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	domains []string
}

func NewGenerator(domains ...string) *defaultGenerator {
	return &defaultGenerator{domains: domains}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		domains: g.domains,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

// Opt mutates an outgoing request. An error aborts the call before anything
// is sent.
type Opt interface {
	Do(defaultClient, *http.Request) error
}

type defaultClient struct {
	domains []string
	method  string
	path    string
	headers http.Header
	query   Parameter
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	if len(c.domains) == 0 {
		return nil, errorx.New(errorx.BadRequest, "no domain configured for %s", c.path)
	}

	var lastErr error
	perm := rand.Perm(len(c.domains))

	for _, index := range perm {
		url := c.domains[index] + c.path
		if len(c.query) > 0 {
			url = url + "?" + c.query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, c.method, url, nil)
		if err != nil {
			return nil, errorx.Wrap(errorx.BadRequest, err, "cannot build request")
		}

		for h, values := range c.headers {
			for _, v := range values {
				req.Header.Add(h, v)
			}
		}

		for _, opt := range opts {
			if err := opt.Do(*c, req); err != nil {
				return nil, err
			}
		}

		response, err := c.do(ctx, req)
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
			lastErr = err
			continue
		}

		return response, nil
	}

	if len(c.domains) == 1 {
		return nil, lastErr
	}

	return nil, errorx.Wrap(errorx.CodeOf(lastErr), lastErr, "all endpoints got errors")
}

func (c *defaultClient) do(ctx context.Context, req *http.Request) (*Response, error) {
	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return nil, errorx.Wrap(errorx.Unavailable, err, "cannot reach %s", req.URL.Host)
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, errorx.Wrap(errorx.Unavailable, err, "cannot read body")
	}

	response := &Response{
		Code:    result.StatusCode,
		Header:  result.Header,
		RawBody: body,
	}

	if len(body) == 0 {
		response.Body = JSON{}
		return response, nil
	}

	if !json.Valid(body) {
		return nil, errorx.New(errorx.BadResponse, "body is not valid json")
	}

	if b, err := bytesToJSON(body); err == nil {
		response.Body = b
	} else if b, err := bytesToArray(body); err == nil {
		response.Body = b
	}

	return response, nil
}
