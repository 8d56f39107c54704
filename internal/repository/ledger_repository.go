package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"paperfolio/internal/domain"
)

// LedgerRepositoryImpl implements the LedgerRepository interface
type LedgerRepositoryImpl struct {
	db *Postgres
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *Postgres) domain.LedgerRepository {
	return &LedgerRepositoryImpl{db: db}
}

// Append durably stores one immutable ledger entry
func (r *LedgerRepositoryImpl) Append(ctx context.Context, entry *domain.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (
			user_id, executed_at, company, symbol, action, shares, price, value
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id
	`

	var id int64
	err := r.db.conn(ctx).QueryRow(ctx, query,
		entry.UserID,
		entry.ExecutedAt,
		entry.Company,
		entry.Symbol,
		entry.Action,
		entry.Shares,
		entry.Price,
		entry.Value,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return id, nil
}

// HoldingsFor aggregates the user's ledger entries per symbol. Symbols
// whose summed share count has dropped below 1 are excluded.
func (r *LedgerRepositoryImpl) HoldingsFor(ctx context.Context, userID uuid.UUID) ([]domain.Holding, error) {
	query := `
		SELECT symbol, MAX(company) AS company, SUM(shares)::bigint AS shares
		FROM transactions
		WHERE user_id = $1
		GROUP BY symbol
		HAVING SUM(shares) >= 1
		ORDER BY symbol
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var h domain.Holding
		if err := rows.Scan(&h.Symbol, &h.Company, &h.Shares); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// HeldShares returns the summed share count for one symbol
func (r *LedgerRepositoryImpl) HeldShares(ctx context.Context, userID uuid.UUID, symbol string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(shares), 0)::bigint
		FROM transactions
		WHERE user_id = $1
		AND symbol = $2
	`

	var shares int64
	err := r.db.conn(ctx).QueryRow(ctx, query, userID, symbol).Scan(&shares)
	if err != nil {
		return 0, fmt.Errorf("failed to sum held shares: %w", err)
	}

	return shares, nil
}

// HistoryFor returns all of the user's entries ordered by execution time
func (r *LedgerRepositoryImpl) HistoryFor(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, executed_at, company, symbol, action, shares, price, value
		FROM transactions
		WHERE user_id = $1
		ORDER BY executed_at ASC, id ASC
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ExecutedAt,
			&t.Company,
			&t.Symbol,
			&t.Action,
			&t.Shares,
			&t.Price,
			&t.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		history = append(history, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return history, nil
}
