package client

import (
	"context"
	"time"
)

// GateState is the checkout state machine position.
type GateState int

const (
	Idle GateState = iota
	AwaitingConfirmation
	Finalized
)

func (s GateState) String() string {
	switch s {
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Finalized:
		return "finalized"
	default:
		return "idle"
	}
}

// OrderSummary is the immutable ticket produced by Confirm.
type OrderSummary struct {
	CompleteMenus int
	TotalPrice    int64 // céntimos
	CreatedAt     time.Time
}

// CheckoutGate guards order confirmation: Idle → AwaitingConfirmation →
// Finalized → (acknowledge) → Idle. Confirm is unreachable except from
// AwaitingConfirmation, which is what prevents double submission.
type CheckoutGate struct {
	cart  *Synchronizer
	state GateState
	now   func() time.Time
}

func NewCheckoutGate(cart *Synchronizer) *CheckoutGate {
	return &CheckoutGate{cart: cart, now: time.Now}
}

// reconcile drops a pending confirmation when the cart emptied or stopped
// pairing up underneath it.
func (g *CheckoutGate) reconcile() {
	if g.state == AwaitingConfirmation && !g.cart.Eligible() {
		g.state = Idle
	}
}

func (g *CheckoutGate) State() GateState {
	g.reconcile()
	return g.state
}

// RequestCheckout arms the gate. When the cart is not an exact set of
// complete menus this is a no-op and the caller should show
// ValidationMessage() instead.
func (g *CheckoutGate) RequestCheckout() bool {
	g.reconcile()
	if g.state != Idle || !g.cart.Eligible() {
		return g.state == AwaitingConfirmation
	}
	g.state = AwaitingConfirmation
	return true
}

// Confirm produces the ticket exactly once per armed checkout.
func (g *CheckoutGate) Confirm() (*OrderSummary, bool) {
	g.reconcile()
	if g.state != AwaitingConfirmation {
		return nil, false
	}
	b := g.cart.Breakdown()
	summary := &OrderSummary{
		CompleteMenus: b.CompleteMenus,
		TotalPrice:    g.cart.TotalPrice(),
		CreatedAt:     g.now(),
	}
	g.state = Finalized
	return summary, true
}

// Acknowledge closes the ticket. It clears the cart, the only clearing
// path after a successful order, and returns the gate to Idle. If the
// remote clear fails the gate stays Finalized so the caller can retry.
func (g *CheckoutGate) Acknowledge(ctx context.Context) error {
	if g.state != Finalized {
		return nil
	}
	if err := g.cart.Clear(ctx); err != nil {
		return err
	}
	g.state = Idle
	return nil
}
