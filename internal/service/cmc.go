package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/guttosm/coinpulse/config"
	"github.com/guttosm/coinpulse/internal/upstream"
)

// CoinMarketCap Pro API endpoint paths.
const (
	cmcGlobalPath   = "/v1/global-metrics/quotes/latest"
	cmcListingsPath = "/v1/cryptocurrency/listings/latest"
	cmcQuotesPath   = "/v2/cryptocurrency/quotes/latest"

	cmcKeyHeader = "X-CMC_PRO_API_KEY"
)

// MarketService proxies the CoinMarketCap endpoints.
//
// Every method returns the upstream "data" field as raw JSON so the payload
// reaches the client byte-identical. Errors are *UpstreamError for non-2xx
// answers and *upstream.NetworkError for transport failures; neither is
// retried or recovered here.
type MarketService interface {
	// Global fetches the latest global market metrics in the given currency.
	Global(ctx context.Context, convert string) (json.RawMessage, error)

	// Listings fetches the latest listings sorted by market cap, capped at limit.
	Listings(ctx context.Context, convert string, limit int) (json.RawMessage, error)

	// Quotes fetches the latest quotes for a comma-separated symbol list.
	Quotes(ctx context.Context, symbols, convert string) (json.RawMessage, error)
}

type marketService struct {
	fetcher upstream.Fetcher
	cfg     config.CoinMarketCapConfig
}

// NewMarketService constructs a MarketService bound to the given upstream
// configuration. The API key is read once at construction and never mutated.
func NewMarketService(fetcher upstream.Fetcher, cfg config.CoinMarketCapConfig) MarketService {
	return &marketService{fetcher: fetcher, cfg: cfg}
}

func (s *marketService) Global(ctx context.Context, convert string) (json.RawMessage, error) {
	return s.fetchData(ctx, upstream.Request{
		BaseURL: s.cfg.BaseURL,
		Path:    cmcGlobalPath,
		Header:  map[string]string{cmcKeyHeader: s.cfg.APIKey},
		Query:   map[string]string{"convert": convert},
		Timeout: upstream.SingleTimeout,
	}, objectFallback)
}

func (s *marketService) Listings(ctx context.Context, convert string, limit int) (json.RawMessage, error) {
	return s.fetchData(ctx, upstream.Request{
		BaseURL: s.cfg.BaseURL,
		Path:    cmcListingsPath,
		Header:  map[string]string{cmcKeyHeader: s.cfg.APIKey},
		Query: map[string]string{
			"convert": convert,
			"limit":   strconv.Itoa(limit),
			"sort":    "market_cap",
		},
		Timeout: upstream.ListTimeout,
	}, arrayFallback)
}

func (s *marketService) Quotes(ctx context.Context, symbols, convert string) (json.RawMessage, error) {
	return s.fetchData(ctx, upstream.Request{
		BaseURL: s.cfg.BaseURL,
		Path:    cmcQuotesPath,
		Header:  map[string]string{cmcKeyHeader: s.cfg.APIKey},
		Query: map[string]string{
			"symbol":  symbols,
			"convert": convert,
		},
		Timeout: upstream.SingleTimeout,
	}, objectFallback)
}

// Defaults when the upstream response carries no "data" field.
var (
	objectFallback = json.RawMessage(`{}`)
	arrayFallback  = json.RawMessage(`[]`)
)

// fetchData performs one upstream call and extracts the "data" field.
//
// A non-2xx answer becomes an *UpstreamError carrying the upstream status and
// raw body text verbatim. Transport failures propagate unchanged.
func (s *marketService) fetchData(ctx context.Context, req upstream.Request, fallback json.RawMessage) (json.RawMessage, error) {
	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(resp.Body)}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode coinmarketcap response: %w", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fallback, nil
	}
	return envelope.Data, nil
}
