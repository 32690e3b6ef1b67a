package api

import (
	"context"
	"fmt"
)

type MockAPIGenerator struct {
	MockClient MockAPIClient

	// Paths records every path passed to New.
	Paths []string
}

func (m *MockAPIGenerator) New(path string, args ...any) Client {
	m.Paths = append(m.Paths, fmt.Sprintf(path, args...))
	return &m.MockClient
}

type MockAPIClient struct {
	HeaderFunc func(name, value string) Client
	QueryFunc  func(query Parameter) Client
	GETFunc    func(ctx context.Context, opts ...Opt) (*Response, error)
}

func (c *MockAPIClient) Header(name, value string) Client {
	if c.HeaderFunc != nil {
		return c.HeaderFunc(name, value)
	}

	return c
}

func (c *MockAPIClient) Query(query Parameter) Client {
	if c.QueryFunc != nil {
		return c.QueryFunc(query)
	}

	return c
}

func (c *MockAPIClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.GETFunc != nil {
		return c.GETFunc(ctx, opts...)
	}

	panic("not implemented")
}
