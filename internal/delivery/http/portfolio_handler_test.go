package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"paperfolio/internal/domain"
)

// mockAccountant implements the Accountant interface for testing
type mockAccountant struct {
	validateErr error
	commitErr   error
	proposal    *domain.Proposal
	result      *domain.CommitResult
}

func (m *mockAccountant) ValidateAndPrice(ctx context.Context, userID uuid.UUID, symbol string, shares int64, action domain.Action) (*domain.Proposal, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.proposal, nil
}

func (m *mockAccountant) Commit(ctx context.Context, userID uuid.UUID, p *domain.Proposal) (*domain.CommitResult, error) {
	if m.commitErr != nil {
		return nil, m.commitErr
	}
	return m.result, nil
}

func (m *mockAccountant) PortfolioView(ctx context.Context, userID uuid.UUID) (*domain.PortfolioView, error) {
	return &domain.PortfolioView{}, nil
}

func (m *mockAccountant) History(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return nil, nil
}

// mockQuoteGateway implements domain.QuoteGateway for testing
type mockQuoteGateway struct {
	quote domain.Quote
	err   error
}

func (m *mockQuoteGateway) Lookup(ctx context.Context, symbol string) (domain.Quote, error) {
	if m.err != nil {
		return domain.Quote{}, m.err
	}
	return m.quote, nil
}

func newTradeContext(t *testing.T, method, target, body string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set("user_id", uuid.New())
	}
	return c, rec
}

func TestValidateTradeInsufficientFunds(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{validateErr: domain.ErrInsufficientFunds}, &mockQuoteGateway{}, nil)
	c, rec := newTradeContext(t, http.MethodPost, "/api/trades/validate", `{"symbol":"IBM","shares":10,"action":"buy"}`, true)

	if err := h.ValidateTrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "error" || resp.Message != domain.ErrInsufficientFunds.Error() {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestValidateTradeBadAction(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{}, &mockQuoteGateway{}, nil)
	c, rec := newTradeContext(t, http.MethodPost, "/api/trades/validate", `{"symbol":"IBM","shares":10,"action":"short"}`, true)

	if err := h.ValidateTrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidateTradeUnauthenticated(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{}, &mockQuoteGateway{}, nil)
	c, rec := newTradeContext(t, http.MethodPost, "/api/trades/validate", `{"symbol":"IBM","shares":10,"action":"buy"}`, false)

	if err := h.ValidateTrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGetQuoteBlankSymbol(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{}, &mockQuoteGateway{}, nil)
	c, rec := newTradeContext(t, http.MethodGet, "/api/quote", "", true)

	if err := h.GetQuote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetQuoteSuccess(t *testing.T) {
	gateway := &mockQuoteGateway{quote: domain.Quote{
		Symbol:  "NFLX",
		Company: "Netflix Inc",
		Price:   decimal.RequireFromString("321.50"),
	}}
	h := NewPortfolioHandler(&mockAccountant{}, gateway, nil)
	c, rec := newTradeContext(t, http.MethodGet, "/api/quote?symbol=NFLX", "", true)

	if err := h.GetQuote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "NFLX") {
		t.Fatalf("response missing symbol: %s", rec.Body.String())
	}
}

func TestCommitTradeStorageFailure(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{commitErr: errors.New("connection reset")}, &mockQuoteGateway{}, nil)
	body := `{"symbol":"IBM","company":"International Business Machines","shares":10,"action":"buy","unit_price":"150.25","total_value":"1502.50"}`
	c, rec := newTradeContext(t, http.MethodPost, "/api/trades/commit", body, true)

	if err := h.CommitTrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestCommitTradeRejection(t *testing.T) {
	h := NewPortfolioHandler(&mockAccountant{commitErr: domain.ErrInsufficientShares}, &mockQuoteGateway{}, nil)
	body := `{"symbol":"IBM","company":"International Business Machines","shares":10,"action":"sell","unit_price":"150.25","total_value":"1502.50"}`
	c, rec := newTradeContext(t, http.MethodPost, "/api/trades/commit", body, true)

	if err := h.CommitTrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
