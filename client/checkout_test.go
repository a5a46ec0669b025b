package client

import (
	"context"
	"testing"
	"time"

	"menudia/pkg/pairing"
)

func eligibleCart(t *testing.T) (*Synchronizer, *fakeAPI) {
	t.Helper()
	s, api := newTestSync(t)
	ctx := context.Background()
	// 1 starter at 10.00 + 1 main at 15.00 = one complete menu, 25.00
	api.prices[10] = 1000
	api.prices[11] = 1500
	if err := s.AddItem(ctx, Dish{ID: 10, Category: pairing.Starter, Price: 1000}); err != nil {
		t.Fatalf("AddItem starter: %v", err)
	}
	if err := s.AddItem(ctx, Dish{ID: 11, Category: pairing.Main, Price: 1500}); err != nil {
		t.Fatalf("AddItem main: %v", err)
	}
	return s, api
}

func TestCheckoutHappyPath(t *testing.T) {
	s, _ := eligibleCart(t)
	ctx := context.Background()

	g := NewCheckoutGate(s)
	fixed := time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	if !s.Eligible() {
		t.Fatalf("cart should be eligible, message %q", s.ValidationMessage())
	}
	if !g.RequestCheckout() {
		t.Fatal("RequestCheckout refused an eligible cart")
	}

	summary, ok := g.Confirm()
	if !ok {
		t.Fatal("Confirm refused from AwaitingConfirmation")
	}
	if summary.CompleteMenus != 1 || summary.TotalPrice != 2500 {
		t.Errorf("summary = %+v, want 1 menu at 2500", summary)
	}
	if !summary.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", summary.CreatedAt, fixed)
	}

	// a second confirm before a new checkout must be rejected
	if _, ok := g.Confirm(); ok {
		t.Error("Confirm produced a second ticket from Finalized")
	}

	if err := g.Acknowledge(ctx); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if got := s.Len(); got != 0 {
		t.Errorf("cart has %d lines after acknowledge, want 0", got)
	}
	if g.State() != Idle {
		t.Errorf("state = %v, want idle", g.State())
	}
	if _, ok := g.Confirm(); ok {
		t.Error("Confirm succeeded from Idle")
	}
}

func TestRequestCheckoutIneligibleIsNoop(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()
	api.prices[10] = 1000
	if err := s.AddItem(ctx, Dish{ID: 10, Category: pairing.Starter, Price: 1000}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	g := NewCheckoutGate(s)
	if g.RequestCheckout() {
		t.Error("RequestCheckout armed on an unpaired cart")
	}
	if g.State() != Idle {
		t.Errorf("state = %v, want idle", g.State())
	}
	if msg := s.ValidationMessage(); msg == "" {
		t.Error("expected a validation message for the caller to surface")
	}
}

func TestGateResetsWhenEligibilityBreaks(t *testing.T) {
	s, api := eligibleCart(t)
	ctx := context.Background()

	g := NewCheckoutGate(s)
	if !g.RequestCheckout() {
		t.Fatal("RequestCheckout refused an eligible cart")
	}

	// an extra starter arrives while the confirmation dialog is open
	api.prices[12] = 900
	if err := s.AddItem(ctx, Dish{ID: 12, Category: pairing.Starter, Price: 900}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if g.State() != Idle {
		t.Errorf("state = %v, want idle after eligibility broke", g.State())
	}
	if _, ok := g.Confirm(); ok {
		t.Error("Confirm produced a ticket for an unpaired cart")
	}
}

func TestAcknowledgeOutsideFinalizedIsNoop(t *testing.T) {
	s, api := eligibleCart(t)

	g := NewCheckoutGate(s)
	before := len(api.mutations)
	if err := g.Acknowledge(context.Background()); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if len(api.mutations) != before {
		t.Errorf("idle acknowledge cleared the cart: %v", api.mutations[before:])
	}
	if got := s.Len(); got != 2 {
		t.Errorf("cart has %d lines, want 2", got)
	}
}

func TestAcknowledgeFailureStaysFinalized(t *testing.T) {
	s, api := eligibleCart(t)
	ctx := context.Background()

	g := NewCheckoutGate(s)
	g.RequestCheckout()
	if _, ok := g.Confirm(); !ok {
		t.Fatal("Confirm failed")
	}

	api.failClear = &RemoteRejectedError{Status: 500, Message: "boom"}
	if err := g.Acknowledge(ctx); err == nil {
		t.Fatal("Acknowledge: expected error")
	}
	if g.State() != Finalized {
		t.Errorf("state = %v, want finalized so the caller can retry", g.State())
	}

	api.failClear = nil
	if err := g.Acknowledge(ctx); err != nil {
		t.Fatalf("retry Acknowledge: %v", err)
	}
	if g.State() != Idle || s.Len() != 0 {
		t.Errorf("state = %v with %d lines, want idle and empty", g.State(), s.Len())
	}
}
