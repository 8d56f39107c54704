package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"paperfolio/internal/domain"
	"paperfolio/internal/utils"
)

// PortfolioService is the portfolio accountant: it validates and prices
// trade requests against live quotes and the ledger, commits accepted
// trades atomically, and derives portfolio views.
//
// Validation and commit are deliberately separate steps so the caller can
// put a confirmation step between them; validation writes nothing.
type PortfolioService struct {
	users  domain.UserRepository
	ledger domain.LedgerRepository
	quotes domain.QuoteGateway
	tx     domain.TxRunner
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(
	users domain.UserRepository,
	ledger domain.LedgerRepository,
	quotes domain.QuoteGateway,
	tx domain.TxRunner,
) *PortfolioService {
	return &PortfolioService{
		users:  users,
		ledger: ledger,
		quotes: quotes,
		tx:     tx,
	}
}

// ValidateAndPrice checks a proposed trade against the current quote,
// cash balance and holdings, and returns a priced proposal. Rejections
// are the sentinel errors in the domain package; nothing is written.
func (s *PortfolioService) ValidateAndPrice(ctx context.Context, userID uuid.UUID, symbol string, shares int64, action domain.Action) (*domain.Proposal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrInvalidSymbol
	}
	if shares < 1 {
		return nil, domain.ErrInvalidShares
	}
	if action != domain.ActionBuy && action != domain.ActionSell {
		return nil, domain.ErrInvalidAction
	}

	// Quote failure short-circuits before any monetary computation.
	quote, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	qty := decimal.NewFromInt(shares)

	var total decimal.Decimal
	switch action {
	case domain.ActionBuy:
		// Intermediate 3-decimal rounding; the final 2-decimal currency
		// rounding happens at commit.
		total = quote.Price.Mul(qty).Round(3)

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("validate buy: %w", err)
		}
		if total.GreaterThan(user.Cash) {
			return nil, domain.ErrInsufficientFunds
		}

	case domain.ActionSell:
		held, err := s.ledger.HeldShares(ctx, userID, symbol)
		if err != nil {
			return nil, fmt.Errorf("validate sell: %w", err)
		}
		if held < 1 || shares > held {
			return nil, domain.ErrInsufficientShares
		}
		total = quote.Price.Mul(qty)
	}

	return &domain.Proposal{
		Symbol:     quote.Symbol,
		Company:    quote.Company,
		Shares:     shares,
		Action:     action,
		UnitPrice:  quote.Price,
		TotalValue: total,
	}, nil
}

// Commit executes a previously validated proposal. The sufficiency checks
// are re-run inside a storage transaction with the user's row locked, so
// two concurrent commits for the same user serialize and the second sees
// the first's effect. The ledger append and the cash update commit or
// roll back together.
func (s *PortfolioService) Commit(ctx context.Context, userID uuid.UUID, p *domain.Proposal) (*domain.CommitResult, error) {
	if p == nil || strings.TrimSpace(p.Symbol) == "" {
		return nil, domain.ErrInvalidSymbol
	}
	if p.Shares < 1 {
		return nil, domain.ErrInvalidShares
	}
	if p.Action != domain.ActionBuy && p.Action != domain.ActionSell {
		return nil, domain.ErrInvalidAction
	}
	if p.UnitPrice.Sign() <= 0 || p.TotalValue.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	total := p.TotalValue.Round(2)

	var result *domain.CommitResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		cash, err := s.users.GetCashForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		var entry *domain.Transaction
		now := time.Now().UTC()

		switch p.Action {
		case domain.ActionBuy:
			if total.GreaterThan(cash) {
				return domain.ErrInsufficientFunds
			}
			entry = domain.NewBuyTransaction(userID, p.Company, symbol, p.Shares, p.UnitPrice, total, now)

		case domain.ActionSell:
			held, err := s.ledger.HeldShares(ctx, userID, symbol)
			if err != nil {
				return fmt.Errorf("commit sell: %w", err)
			}
			if held < 1 || p.Shares > held {
				return domain.ErrInsufficientShares
			}
			entry = domain.NewSellTransaction(userID, p.Company, symbol, p.Shares, p.UnitPrice, total, now)
		}

		id, err := s.ledger.Append(ctx, entry)
		if err != nil {
			return err
		}

		newCash := cash.Add(entry.CashDelta())
		if err := s.users.UpdateCash(ctx, userID, newCash); err != nil {
			return err
		}

		result = &domain.CommitResult{TransactionID: id, Cash: newCash}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("trade committed",
		slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
		slog.String("userID", userID.String()),
		slog.String("symbol", symbol),
		slog.String("action", string(p.Action)),
		slog.Int64("shares", p.Shares),
		slog.String("value", total.String()),
	)

	return result, nil
}

// PortfolioView prices every holding with a fresh quote and totals the
// account. If any single quote fails the whole view fails: a partial
// valuation is worse than an explicit error.
func (s *PortfolioService) PortfolioView(ctx context.Context, userID uuid.UUID) (*domain.PortfolioView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolio view: %w", err)
	}

	holdings, err := s.ledger.HoldingsFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolio view: %w", err)
	}

	view := &domain.PortfolioView{
		Cash:        user.Cash,
		Positions:   make([]domain.PortfolioPosition, 0, len(holdings)),
		StocksTotal: decimal.Zero,
	}

	for _, h := range holdings {
		quote, err := s.quotes.Lookup(ctx, h.Symbol)
		if err != nil {
			return nil, err
		}

		value := quote.Price.Mul(decimal.NewFromInt(h.Shares)).Round(2)
		view.StocksTotal = view.StocksTotal.Add(value)
		view.Positions = append(view.Positions, domain.PortfolioPosition{
			Symbol:  h.Symbol,
			Company: h.Company,
			Shares:  h.Shares,
			Price:   quote.Price,
			Value:   value,
		})
	}

	view.GrandTotal = view.StocksTotal.Add(user.Cash)
	return view, nil
}

// History returns the user's full transaction history, oldest first.
func (s *PortfolioService) History(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return s.ledger.HistoryFor(ctx, userID)
}
