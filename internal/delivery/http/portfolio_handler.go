package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"paperfolio/internal/delivery/http/dto"
	"paperfolio/internal/domain"
	"paperfolio/internal/middleware"
)

// Accountant is the portfolio accounting surface used by the handlers.
type Accountant interface {
	ValidateAndPrice(ctx context.Context, userID uuid.UUID, symbol string, shares int64, action domain.Action) (*domain.Proposal, error)
	Commit(ctx context.Context, userID uuid.UUID, p *domain.Proposal) (*domain.CommitResult, error)
	PortfolioView(ctx context.Context, userID uuid.UUID) (*domain.PortfolioView, error)
	History(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

// PortfolioHandler handles quotes, trades, portfolio and history
type PortfolioHandler struct {
	accountant Accountant
	quotes     domain.QuoteGateway
	userRepo   domain.UserRepository
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(accountant Accountant, quotes domain.QuoteGateway, userRepo domain.UserRepository) *PortfolioHandler {
	return &PortfolioHandler{
		accountant: accountant,
		quotes:     quotes,
		userRepo:   userRepo,
	}
}

// GetMe returns the authenticated user
// GET /api/me
func (h *PortfolioHandler) GetMe(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil {
		return RejectionResponse(c, err)
	}

	return SuccessResponse(c, &dto.UserOutput{
		ID:       user.ID.String(),
		Username: user.Username,
		Cash:     user.Cash,
	})
}

// GetQuote returns a live quote for a symbol
// GET /api/quote?symbol=AAPL
func (h *PortfolioHandler) GetQuote(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return BadRequestResponse(c, "Symbol is required")
	}

	quote, err := h.quotes.Lookup(c.Request().Context(), symbol)
	if err != nil {
		return RejectionResponse(c, err)
	}

	return SuccessResponse(c, quote)
}

// ValidateTrade prices and validates a proposed trade without committing it
// POST /api/trades/validate
func (h *PortfolioHandler) ValidateTrade(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return RejectionResponse(c, err)
	}

	proposal, err := h.accountant.ValidateAndPrice(c.Request().Context(), userID, req.Symbol, req.Shares, action)
	if err != nil {
		return RejectionResponse(c, err)
	}

	return SuccessResponse(c, proposal)
}

// CommitTrade executes a confirmed proposal
// POST /api/trades/commit
func (h *PortfolioHandler) CommitTrade(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	var req dto.CommitRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return RejectionResponse(c, err)
	}

	proposal := &domain.Proposal{
		Symbol:     req.Symbol,
		Company:    req.Company,
		Shares:     req.Shares,
		Action:     action,
		UnitPrice:  req.UnitPrice,
		TotalValue: req.TotalValue,
	}

	result, err := h.accountant.Commit(c.Request().Context(), userID, proposal)
	if err != nil {
		if domain.IsRejection(err) {
			return RejectionResponse(c, err)
		}
		// Storage failure on the commit path is internal, never a
		// user-facing rejection.
		return InternalServerErrorResponse(c, "Failed to commit trade", err)
	}

	return SuccessResponse(c, result)
}

// GetPortfolio returns the user's portfolio valued at live prices
// GET /api/portfolio
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	view, err := h.accountant.PortfolioView(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteUnavailable) {
			return RejectionResponse(c, err)
		}
		return InternalServerErrorResponse(c, "Failed to compute portfolio", err)
	}

	return SuccessResponse(c, view)
}

// GetHistory returns the user's transaction history, oldest first
// GET /api/history
func (h *PortfolioHandler) GetHistory(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Authentication required")
	}

	history, err := h.accountant.History(c.Request().Context(), userID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to load history", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"transactions": history,
	})
}
