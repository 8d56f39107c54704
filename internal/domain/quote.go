package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quote is a transient price lookup result for a symbol. It is valid only
// for the instant it was fetched and is never persisted or cached.
type Quote struct {
	Symbol  string          `json:"symbol"`
	Company string          `json:"company"`
	Price   decimal.Decimal `json:"price"`
}

// QuoteGateway defines the interface for fetching live quotes.
// Every failure mode (network, HTTP status, malformed payload) is
// reported as ErrQuoteUnavailable so callers have a single branch.
type QuoteGateway interface {
	Lookup(ctx context.Context, symbol string) (Quote, error)
}
