package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/coinpulse/config"
	"github.com/guttosm/coinpulse/internal/domain/models"
	"github.com/guttosm/coinpulse/internal/upstream"
)

func newHistory(f *scriptedFetcher) *historyService {
	return NewHistoryService(f, config.CoinGeckoConfig{
		BaseURL: "https://gecko.example",
	}).(*historyService)
}

func TestResolve_Policy(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		symbol  string
		want    models.CoinID
		wantErr bool
	}{
		{
			// Exact case-insensitive match wins even when it is not the
			// first candidate in upstream order.
			name:   "exact match beats earlier candidates",
			body:   `{"coins":[{"id":"bittorrent","symbol":"BTT","name":"BitTorrent"},{"id":"bitcoin","symbol":"btc","name":"Bitcoin"}]}`,
			symbol: "BTC",
			want:   "bitcoin",
		},
		{
			// No exact match: the upstream's own relevance ranking is the
			// tie-break. Ambiguous tickers resolve to whatever ranks first;
			// this is the documented policy, not an accident.
			name:   "no exact match falls back to first result",
			body:   `{"coins":[{"id":"wrapped-bitcoin","symbol":"WBTC","name":"Wrapped Bitcoin"},{"id":"bitcoin-cash","symbol":"BCH","name":"Bitcoin Cash"}]}`,
			symbol: "BITC",
			want:   "wrapped-bitcoin",
		},
		{
			name:    "empty candidate list is not found",
			body:    `{"coins":[]}`,
			symbol:  "NOPE",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &scriptedFetcher{responses: []*upstream.Response{ok(tc.body)}}
			svc := newHistory(f)

			id, err := svc.resolve(context.Background(), tc.symbol)
			if tc.wantErr {
				var nf *SymbolNotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected *SymbolNotFoundError, got %T: %v", err, err)
				}
				if nf.Symbol != tc.symbol {
					t.Fatalf("error does not name symbol: %q", nf.Symbol)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tc.want {
				t.Fatalf("resolved %q, want %q", id, tc.want)
			}

			req := f.requests[0]
			if req.Path != "/api/v3/search" || req.Query["query"] != tc.symbol {
				t.Fatalf("unexpected search request: %+v", req)
			}
			if req.Timeout != upstream.ListTimeout {
				t.Fatalf("search must use the list timeout, got %v", req.Timeout)
			}
		})
	}
}

func TestHistory_SequentialPipelineAndOrder(t *testing.T) {
	f := &scriptedFetcher{responses: []*upstream.Response{
		ok(`{"coins":[{"id":"bitcoin","symbol":"BTC","name":"Bitcoin"}]}`),
		ok(`{"prices":[[1000,50000.1],[2000,50010.2],[3000,49995.7]]}`),
	}}
	svc := newHistory(f)

	series, err := svc.History(context.Background(), "btc", "USD", "30", "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.CoinID != "bitcoin" {
		t.Fatalf("unexpected coin id %q", series.CoinID)
	}

	// Order and pairing of the upstream prices array must survive untouched.
	want := []models.PricePoint{{1000, 50000.1}, {2000, 50010.2}, {3000, 49995.7}}
	if len(series.Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(series.Points))
	}
	for i, p := range want {
		if series.Points[i] != p {
			t.Fatalf("point %d altered: got %v want %v", i, series.Points[i], p)
		}
	}

	// Chart request comes second and is built from the resolved id.
	if len(f.requests) != 2 {
		t.Fatalf("expected resolve then chart, got %d calls", len(f.requests))
	}
	chart := f.requests[1]
	if chart.Path != "/api/v3/coins/bitcoin/market_chart" {
		t.Fatalf("unexpected chart path %q", chart.Path)
	}
	if chart.Query["vs_currency"] != "usd" {
		t.Fatalf("vs_currency must be lowercased, got %q", chart.Query["vs_currency"])
	}
	if chart.Query["days"] != "30" || chart.Query["interval"] != "daily" {
		t.Fatalf("unexpected chart query: %v", chart.Query)
	}
	if chart.Timeout != upstream.SingleTimeout {
		t.Fatalf("chart must use the single-entity timeout, got %v", chart.Timeout)
	}
}

func TestHistory_OmitsEmptyInterval(t *testing.T) {
	f := &scriptedFetcher{responses: []*upstream.Response{
		ok(`{"coins":[{"id":"ethereum","symbol":"ETH","name":"Ethereum"}]}`),
		ok(`{"prices":[]}`),
	}}
	svc := newHistory(f)

	series, err := svc.History(context.Background(), "ETH", "usd", "max", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Points == nil || len(series.Points) != 0 {
		t.Fatalf("expected empty (non-nil) points, got %v", series.Points)
	}

	chart := f.requests[1]
	if _, present := chart.Query["interval"]; present {
		t.Fatalf("interval must be omitted when unset: %v", chart.Query)
	}
	if chart.Query["days"] != "max" {
		t.Fatalf("days=max not forwarded: %v", chart.Query)
	}
}

func TestHistory_ResolveFailureStopsPipeline(t *testing.T) {
	f := &scriptedFetcher{responses: []*upstream.Response{
		ok(`{"coins":[]}`),
	}}
	svc := newHistory(f)

	_, err := svc.History(context.Background(), "NOPE", "USD", "30", "")
	var nf *SymbolNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *SymbolNotFoundError, got %T: %v", err, err)
	}
	if len(f.requests) != 1 {
		t.Fatalf("chart must not be fetched after failed resolution, got %d calls", len(f.requests))
	}
}

func TestHistory_UpstreamErrorsPropagate(t *testing.T) {
	cases := []struct {
		name      string
		responses []*upstream.Response
		errs      []error
		check     func(t *testing.T, err error)
	}{
		{
			name:      "search rejected",
			responses: []*upstream.Response{rejected(500, "internal error")},
			check: func(t *testing.T, err error) {
				var upErr *UpstreamError
				if !errors.As(err, &upErr) || upErr.Status != 500 || upErr.Body != "internal error" {
					t.Fatalf("unexpected error: %v", err)
				}
			},
		},
		{
			name: "chart network failure",
			responses: []*upstream.Response{
				ok(`{"coins":[{"id":"bitcoin","symbol":"BTC","name":"Bitcoin"}]}`),
			},
			errs: []error{nil, &upstream.NetworkError{Cause: errors.New("context deadline exceeded")}},
			check: func(t *testing.T, err error) {
				var netErr *upstream.NetworkError
				if !errors.As(err, &netErr) {
					t.Fatalf("expected network error, got %T: %v", err, err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &scriptedFetcher{responses: tc.responses, errs: tc.errs}
			svc := newHistory(f)
			_, err := svc.History(context.Background(), "BTC", "USD", "7", "")
			if err == nil {
				t.Fatalf("expected error")
			}
			tc.check(t, err)
		})
	}
}
