package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/coinpulse/config"
	"github.com/guttosm/coinpulse/internal/domain/models"
	"github.com/guttosm/coinpulse/internal/logger"
	"github.com/guttosm/coinpulse/internal/upstream"
)

// CoinGecko public API endpoint paths.
const (
	geckoSearchPath      = "/api/v3/search"
	geckoMarketChartPath = "/api/v3/coins/%s/market_chart"
)

// HistoryService produces historical price series from CoinGecko.
//
// CoinGecko has no stable symbol-keyed price endpoint; its catalog uses
// opaque ids, so every history request is a two-step pipeline: resolve the
// ticker to a CoinID, then fetch the market chart for that id. The second
// call's parameters depend on the first call's result, so the steps are
// strictly sequential.
type HistoryService interface {
	History(ctx context.Context, symbol, convert, days, interval string) (*models.PriceSeries, error)
}

type historyService struct {
	fetcher upstream.Fetcher
	cfg     config.CoinGeckoConfig
}

// NewHistoryService constructs a HistoryService bound to the given CoinGecko
// configuration. No credential is required.
func NewHistoryService(fetcher upstream.Fetcher, cfg config.CoinGeckoConfig) HistoryService {
	return &historyService{fetcher: fetcher, cfg: cfg}
}

// History resolves the symbol and fetches its chart.
func (s *historyService) History(ctx context.Context, symbol, convert, days, interval string) (*models.PriceSeries, error) {
	id, err := s.resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}
	points, err := s.marketChart(ctx, id, convert, days, interval)
	if err != nil {
		return nil, err
	}
	return &models.PriceSeries{CoinID: id, Points: points}, nil
}

// resolve maps a ticker symbol to a CoinGecko catalog id.
//
// Policy: first candidate whose symbol equals the query case-insensitively
// wins; otherwise the first candidate in upstream order (CoinGecko's own
// relevance ranking is the tie-break); an empty candidate list is
// *SymbolNotFoundError. Ambiguous tickers resolve to whichever coin the
// upstream ranks first; market cap and volume are not consulted.
func (s *historyService) resolve(ctx context.Context, symbol string) (models.CoinID, error) {
	resp, err := s.fetcher.Fetch(ctx, upstream.Request{
		BaseURL: s.cfg.BaseURL,
		Path:    geckoSearchPath,
		Query:   map[string]string{"query": symbol},
		Timeout: upstream.ListTimeout,
	})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(resp.Body)}
	}

	var result struct {
		Coins []models.CoinMatch `json:"coins"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", fmt.Errorf("decode coingecko search response: %w", err)
	}
	if len(result.Coins) == 0 {
		return "", &SymbolNotFoundError{Symbol: symbol}
	}

	for _, coin := range result.Coins {
		if strings.EqualFold(coin.Symbol, symbol) {
			return coin.ID, nil
		}
	}

	// No exact symbol match: accept the top-ranked candidate.
	first := result.Coins[0]
	logger.L().Debug().
		Str("symbol", symbol).
		Str("coin_id", string(first.ID)).
		Msg("no exact symbol match, using first search result")
	return first.ID, nil
}

// marketChart fetches the price series for a resolved catalog id.
// Point order and pairing are preserved exactly as the upstream returned them.
func (s *historyService) marketChart(ctx context.Context, id models.CoinID, convert, days, interval string) ([]models.PricePoint, error) {
	query := map[string]string{
		"vs_currency": strings.ToLower(convert),
		"days":        days,
	}
	if interval != "" {
		query["interval"] = interval
	}

	resp, err := s.fetcher.Fetch(ctx, upstream.Request{
		BaseURL: s.cfg.BaseURL,
		Path:    fmt.Sprintf(geckoMarketChartPath, id),
		Query:   query,
		Timeout: upstream.SingleTimeout,
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(resp.Body)}
	}

	var chart struct {
		Prices []models.PricePoint `json:"prices"`
	}
	if err := resp.Decode(&chart); err != nil {
		return nil, fmt.Errorf("decode coingecko market chart: %w", err)
	}
	if chart.Prices == nil {
		chart.Prices = []models.PricePoint{}
	}
	return chart.Prices, nil
}
