package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user. Returns ErrUsernameTaken when the
	// username is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetCashForUpdate reads the user's cash balance with a row lock,
	// serializing concurrent commits for the same user. Must be called
	// inside a transaction started with TxRunner.WithinTx.
	GetCashForUpdate(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)

	// UpdateCash sets the user's cash balance
	UpdateCash(ctx context.Context, id uuid.UUID, cash decimal.Decimal) error
}

// LedgerRepository defines the interface for the append-only trade ledger,
// the single source of truth for holdings. There are deliberately no
// update or delete operations.
type LedgerRepository interface {
	// Append durably stores one immutable ledger entry and returns its id
	Append(ctx context.Context, entry *Transaction) (int64, error)

	// HoldingsFor aggregates the user's ledger entries per symbol.
	// Only symbols whose summed share count is >= 1 are returned.
	HoldingsFor(ctx context.Context, userID uuid.UUID) ([]Holding, error)

	// HeldShares returns the summed share count for one symbol,
	// 0 if the user never traded it
	HeldShares(ctx context.Context, userID uuid.UUID, symbol string) (int64, error)

	// HistoryFor returns all of the user's entries ordered by execution
	// time ascending
	HistoryFor(ctx context.Context, userID uuid.UUID) ([]Transaction, error)
}

// TxRunner runs a function within a storage transaction. Repository calls
// made with the ctx passed to fn join that transaction; the transaction
// commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
