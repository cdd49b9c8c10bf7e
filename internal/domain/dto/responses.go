package dto

import (
	"encoding/json"

	"github.com/guttosm/coinpulse/internal/domain/models"
)

// MessageResponse is the trivial envelope used by the banner endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Hello from the backend API!"`
}

// StatusResponse is returned by GET /test and reports whether the backend is
// up and whether the CoinMarketCap key is configured.
type StatusResponse struct {
	Backend             string `json:"backend" example:"✅ Running"`
	CoinMarketCapAPIKey string `json:"coinmarketcap_api_key" example:"✅ Set"`
}

// DataResponse wraps a CoinMarketCap payload without reinterpreting it.
//
// The upstream "data" field is carried as raw JSON so the bytes the provider
// returned reach the client unchanged.
type DataResponse struct {
	Data json.RawMessage `json:"data"`
}

// HistoryResponse is the envelope for GET /api/history.
//
// Symbol and Convert echo the request parameters, uppercased. Points keeps
// the chronological order of the upstream prices array.
type HistoryResponse struct {
	Symbol  string              `json:"symbol" example:"BTC"`
	Convert string              `json:"convert" example:"USD"`
	Points  []models.PricePoint `json:"points"`
}
