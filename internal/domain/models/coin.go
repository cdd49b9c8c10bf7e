package models

// CoinID is a CoinGecko catalog identifier for a tradable asset,
// distinct from its ticker symbol (e.g., "bitcoin" for BTC).
type CoinID string

// CoinMatch is one candidate returned by the CoinGecko search endpoint.
// Candidates are ephemeral: they only exist to pick a single CoinID
// per history request.
type CoinMatch struct {
	ID     CoinID `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// PricePoint is one (timestamp, price) pair of a chart series. Index 0 is a
// Unix timestamp in milliseconds, index 1 the price. It marshals as a
// two-element JSON array, matching the upstream wire shape.
type PricePoint [2]float64

// Timestamp returns the point's Unix timestamp in milliseconds.
func (p PricePoint) Timestamp() int64 { return int64(p[0]) }

// Price returns the point's price value.
func (p PricePoint) Price() float64 { return p[1] }

// PriceSeries is a chronological sequence of chart points for one coin.
// Order is significant and must match the upstream response.
type PriceSeries struct {
	CoinID CoinID
	Points []PricePoint
}
