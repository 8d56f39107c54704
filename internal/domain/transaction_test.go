package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSignConvention(t *testing.T) {
	userID := uuid.New()
	price := decimal.RequireFromString("150.25")
	total := decimal.RequireFromString("1502.50")
	now := time.Now()

	buy := NewBuyTransaction(userID, "International Business Machines", "IBM", 10, price, total, now)
	if buy.Shares != 10 {
		t.Fatalf("buy shares = %d, want 10", buy.Shares)
	}
	if !buy.Value.Equal(total) {
		t.Fatalf("buy value = %s, want %s", buy.Value, total)
	}
	if !buy.CashDelta().Equal(total.Neg()) {
		t.Fatalf("buy cash delta = %s, want %s", buy.CashDelta(), total.Neg())
	}

	sell := NewSellTransaction(userID, "International Business Machines", "IBM", 10, price, total, now)
	if sell.Shares != -10 {
		t.Fatalf("sell shares = %d, want -10", sell.Shares)
	}
	if !sell.Value.Equal(total.Neg()) {
		t.Fatalf("sell value = %s, want %s", sell.Value, total.Neg())
	}
	if !sell.CashDelta().Equal(total) {
		t.Fatalf("sell cash delta = %s, want %s", sell.CashDelta(), total)
	}

	// Buy then sell of the same lot nets to zero shares and zero cash
	if buy.Shares+sell.Shares != 0 {
		t.Fatalf("round trip shares do not cancel")
	}
	if !buy.CashDelta().Add(sell.CashDelta()).IsZero() {
		t.Fatalf("round trip cash deltas do not cancel")
	}
}

func TestParseAction(t *testing.T) {
	if a, err := ParseAction("buy"); err != nil || a != ActionBuy {
		t.Fatalf("ParseAction(buy) = %v, %v", a, err)
	}
	if a, err := ParseAction("sell"); err != nil || a != ActionSell {
		t.Fatalf("ParseAction(sell) = %v, %v", a, err)
	}
	if _, err := ParseAction("BUY"); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if _, err := ParseAction(""); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}
