package dto

import "github.com/shopspring/decimal"

// TradeRequest asks for a trade to be validated and priced.
type TradeRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
	Action string `json:"action"`
}

// CommitRequest carries a previously returned proposal back for
// execution. Sufficiency checks are re-run server side on commit, so a
// stale or tampered proposal cannot break the accounting invariants.
type CommitRequest struct {
	Symbol     string          `json:"symbol"`
	Company    string          `json:"company"`
	Shares     int64           `json:"shares"`
	Action     string          `json:"action"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}
