package service

import (
	"errors"
	"fmt"
)

// ErrAPIKeyMissing is returned (and pre-checked by handlers) when the
// CoinMarketCap key is not configured. The message names the environment
// variable so operators know what to set.
var ErrAPIKeyMissing = errors.New("CoinMarketCap API key not configured. Set CMC_API_KEY environment variable.")

// UpstreamError reports a non-2xx answer from a provider. The provider's
// status code and body text are kept verbatim so handlers can pass them
// through to the client without reinterpretation.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream rejected request: status %d: %s", e.Status, e.Body)
}

// SymbolNotFoundError reports that catalog search produced no candidate
// for the requested ticker symbol.
type SymbolNotFoundError struct {
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("no coin found for symbol %q", e.Symbol)
}
