package service

import (
	"context"

	"github.com/guttosm/coinpulse/internal/upstream"
)

// scriptedFetcher replays canned responses in order and records every request.
// It implements upstream.Fetcher for service tests.
type scriptedFetcher struct {
	responses []*upstream.Response
	errs      []error
	requests  []upstream.Request
}

func (f *scriptedFetcher) Fetch(_ context.Context, req upstream.Request) (*upstream.Response, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return &upstream.Response{StatusCode: 200, Body: []byte(`{}`)}, nil
}

var _ upstream.Fetcher = (*scriptedFetcher)(nil)

func ok(body string) *upstream.Response {
	return &upstream.Response{StatusCode: 200, Body: []byte(body)}
}

func rejected(status int, body string) *upstream.Response {
	return &upstream.Response{StatusCode: status, Body: []byte(body)}
}
