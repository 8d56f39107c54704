package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action identifies the kind of trade recorded in the ledger.
type Action string

// Action constants
const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// ParseAction parses a user-supplied action string.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy:
		return ActionBuy, nil
	case ActionSell:
		return ActionSell, nil
	default:
		return "", ErrInvalidAction
	}
}

// Transaction is one immutable ledger entry for an executed trade.
//
// Sign convention, used everywhere: Shares is positive for a buy and
// negative for a sell, so holdings are SUM(shares). Value is the signed
// cash outflow (positive for a buy, negative for a sell), so the cash
// delta of any entry is -Value.
type Transaction struct {
	ID         int64           `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	ExecutedAt time.Time       `json:"executed_at"`
	Company    string          `json:"company"`
	Symbol     string          `json:"symbol"`
	Action     Action          `json:"action"`
	Shares     int64           `json:"shares"`
	Price      decimal.Decimal `json:"price"`
	Value      decimal.Decimal `json:"value"`
}

// NewBuyTransaction builds a ledger entry for a purchase of shares at
// price, with total the unsigned 2-decimal trade value.
func NewBuyTransaction(userID uuid.UUID, company, symbol string, shares int64, price, total decimal.Decimal, at time.Time) *Transaction {
	return &Transaction{
		UserID:     userID,
		ExecutedAt: at,
		Company:    company,
		Symbol:     symbol,
		Action:     ActionBuy,
		Shares:     shares,
		Price:      price,
		Value:      total,
	}
}

// NewSellTransaction builds a ledger entry for a sale of shares at price,
// with total the unsigned 2-decimal sale proceeds.
func NewSellTransaction(userID uuid.UUID, company, symbol string, shares int64, price, total decimal.Decimal, at time.Time) *Transaction {
	return &Transaction{
		UserID:     userID,
		ExecutedAt: at,
		Company:    company,
		Symbol:     symbol,
		Action:     ActionSell,
		Shares:     -shares,
		Price:      price,
		Value:      total.Neg(),
	}
}

// CashDelta returns the signed amount this entry adds to the user's cash.
func (t *Transaction) CashDelta() decimal.Decimal {
	return t.Value.Neg()
}

// Holding is the derived per-symbol position of a user: the sum of signed
// share counts across ledger entries. Only symbols whose sum is >= 1 are
// considered held; holdings are recomputed from the ledger, never stored.
type Holding struct {
	Symbol  string `json:"symbol"`
	Company string `json:"company"`
	Shares  int64  `json:"shares"`
}
