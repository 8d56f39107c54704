package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"paperfolio/configs"
	"paperfolio/internal/domain"
	"paperfolio/internal/utils"
)

// QuoteService fetches live quotes from the external market-data provider.
// It implements domain.QuoteGateway: every failure mode is collapsed into
// domain.ErrQuoteUnavailable, because "is a price available right now" is
// the only distinction callers need.
type QuoteService struct {
	client *resty.Client
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(cfg *configs.Config) *QuoteService {
	client := resty.New().
		SetDebug(cfg.Quote.Debug).
		SetTimeout(cfg.Quote.Timeout).
		SetBaseURL(cfg.Quote.BaseURL).
		SetQueryParam("token", cfg.Quote.Token)
	return &QuoteService{client: client}
}

// quotePayload mirrors the provider's response body.
type quotePayload struct {
	CompanyName string           `json:"companyName"`
	LatestPrice *decimal.Decimal `json:"latestPrice"`
	Symbol      string           `json:"symbol"`
}

// Lookup fetches a live quote for symbol. No caching: every call hits the
// provider.
func (s *QuoteService) Lookup(ctx context.Context, symbol string) (domain.Quote, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("symbol", symbol).
		Get("/stable/stock/{symbol}/quote")

	if err != nil {
		slog.Warn("quote provider request failed", slog.String("symbol", symbol), slog.String("err", err.Error()), slog.String("rqID", rqID))
		return domain.Quote{}, domain.ErrQuoteUnavailable
	}

	if resp.IsError() {
		slog.Warn("quote provider returned error status", slog.String("symbol", symbol), slog.Int("status", resp.StatusCode()), slog.String("rqID", rqID))
		return domain.Quote{}, domain.ErrQuoteUnavailable
	}

	var payload quotePayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		slog.Warn("quote provider returned malformed body", slog.String("symbol", symbol), slog.String("err", err.Error()), slog.String("rqID", rqID))
		return domain.Quote{}, domain.ErrQuoteUnavailable
	}

	if payload.Symbol == "" || payload.CompanyName == "" || payload.LatestPrice == nil || payload.LatestPrice.Sign() <= 0 {
		slog.Warn("quote provider response missing fields", slog.String("symbol", symbol), slog.String("rqID", rqID))
		return domain.Quote{}, domain.ErrQuoteUnavailable
	}

	return domain.Quote{
		Symbol:  strings.ToUpper(payload.Symbol),
		Company: payload.CompanyName,
		Price:   *payload.LatestPrice,
	}, nil
}
