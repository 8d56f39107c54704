package domain

import (
	"github.com/shopspring/decimal"
)

// Proposal is a validated, priced, not-yet-committed trade. Nothing is
// written to storage until the proposal is committed; the two-step split
// exists so the caller can show a confirmation step in between.
type Proposal struct {
	Symbol     string          `json:"symbol"`
	Company    string          `json:"company"`
	Shares     int64           `json:"shares"`
	Action     Action          `json:"action"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"` // unsigned trade value
}

// CommitResult reports the outcome of a committed trade.
type CommitResult struct {
	TransactionID int64           `json:"transaction_id"`
	Cash          decimal.Decimal `json:"cash"`
}

// PortfolioPosition is one priced holding in a portfolio view.
type PortfolioPosition struct {
	Symbol  string          `json:"symbol"`
	Company string          `json:"company"`
	Shares  int64           `json:"shares"`
	Price   decimal.Decimal `json:"price"`
	Value   decimal.Decimal `json:"value"`
}

// PortfolioView is the full valuation of a user's account: every holding
// priced with a fresh quote, plus cash.
type PortfolioView struct {
	Cash        decimal.Decimal     `json:"cash"`
	Positions   []PortfolioPosition `json:"positions"`
	StocksTotal decimal.Decimal     `json:"stocks_total"`
	GrandTotal  decimal.Decimal     `json:"grand_total"`
}
