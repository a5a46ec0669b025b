package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"menudia/pkg/pairing"
)

// Synchronizer keeps the local cart ledger consistent with the remote cart
// service. Every mutation goes remote first and, on success, the whole
// ledger is replaced by a fresh authoritative snapshot: the deliberate
// trade of an extra round trip for zero local/remote drift.
//
// Mutations are serialized by the mutex: the remote service is
// last-write-wins per request, so two in-flight mutations against the same
// cart could otherwise lose updates.
type Synchronizer struct {
	mu sync.Mutex

	api    CartAPI
	store  KVStore
	userID uint

	session string
	cartID  uint
	ledger  *Ledger
}

// NewSynchronizer builds a synchronizer for an anonymous visitor (userID 0)
// or a signed-in user.
func NewSynchronizer(api CartAPI, store KVStore, userID uint) *Synchronizer {
	return &Synchronizer{
		api:    api,
		store:  store,
		userID: userID,
		ledger: NewLedger(),
	}
}

// ensureCart establishes the remote cart identity once and hydrates the
// ledger from it. Callers hold the mutex.
func (s *Synchronizer) ensureCart(ctx context.Context) error {
	if s.cartID != 0 {
		return nil
	}
	sid := sessionID(s.store, s.userID)

	rec, err := s.api.GetCartBySession(ctx, sid)
	if errors.Is(err, ErrCartNotFound) {
		rec, err = s.api.CreateCart(ctx, sid, s.userID)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}
	if rec == nil || rec.ID == 0 {
		return ErrCartUnavailable
	}
	s.session = sid
	s.cartID = rec.ID
	s.applySnapshot(rec)
	return nil
}

// refreshLocked re-fetches the authoritative snapshot and replaces the
// ledger wholesale. Callers hold the mutex.
func (s *Synchronizer) refreshLocked(ctx context.Context) error {
	rec, err := s.api.GetCartBySession(ctx, s.session)
	if errors.Is(err, ErrCartNotFound) {
		s.ledger.Clear()
		return nil
	}
	if err != nil {
		return err
	}
	s.applySnapshot(rec)
	return nil
}

func (s *Synchronizer) applySnapshot(rec *CartRecord) {
	lines := make([]CartLine, 0, len(rec.Items))
	for _, it := range rec.Items {
		cat, err := pairing.ParseCategory(it.Category)
		if err != nil {
			// The authoritative source owns categories; an unknown one
			// falls outside pairing rather than masquerading as a starter.
			cat = pairing.Other
		}
		lines = append(lines, CartLine{
			DishID:       it.DishID,
			RemoteLineID: it.ID,
			Category:     cat,
			UnitPrice:    it.UnitPrice,
			Qty:          it.Qty,
		})
	}
	s.ledger.Replace(lines)
}

// AddItem records one more unit of a dish. On any error the ledger is left
// exactly as it was.
func (s *Synchronizer) AddItem(ctx context.Context, d Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == 0 {
		return fmt.Errorf("%w: missing dish id", ErrInvalidMutation)
	}
	if _, err := pairing.ParseCategory(string(d.Category)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMutation, err)
	}
	if err := s.ensureCart(ctx); err != nil {
		return err
	}
	if err := s.api.AddLine(ctx, s.cartID, d.ID, 1, d.Category); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

// SetQuantity sets a line's quantity outright; qty <= 0 removes the line.
// A dish that is not in the cart is a no-op.
func (s *Synchronizer) SetQuantity(ctx context.Context, dishID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureCart(ctx); err != nil {
		return err
	}
	line, ok := s.findLine(dishID)
	if !ok {
		return nil
	}
	var err error
	if qty <= 0 {
		err = s.api.RemoveLine(ctx, s.cartID, line.RemoteLineID)
	} else {
		err = s.api.UpdateLineQty(ctx, s.cartID, line.RemoteLineID, qty)
	}
	if err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

func (s *Synchronizer) RemoveItem(ctx context.Context, dishID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureCart(ctx); err != nil {
		return err
	}
	line, ok := s.findLine(dishID)
	if !ok {
		return nil
	}
	if err := s.api.RemoveLine(ctx, s.cartID, line.RemoteLineID); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

func (s *Synchronizer) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureCart(ctx); err != nil {
		return err
	}
	if err := s.api.ClearCart(ctx, s.cartID); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

// Refresh re-syncs without mutating, e.g. after the app regains focus.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureCart(ctx); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

func (s *Synchronizer) findLine(dishID uint) (CartLine, bool) {
	for _, l := range s.ledger.Lines() {
		if l.DishID == dishID {
			return l, true
		}
	}
	return CartLine{}, false
}

// --- derived reads; recomputed from the ledger on every call ---

func (s *Synchronizer) Breakdown() pairing.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pairing.Compute(s.ledger.pairingLines())
}

func (s *Synchronizer) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pairing.TotalPrice(s.ledger.pairingLines())
}

func (s *Synchronizer) ValidationMessage() string {
	return s.Breakdown().ValidationMessage()
}

func (s *Synchronizer) Eligible() bool {
	return s.Breakdown().Eligible()
}

func (s *Synchronizer) QuantityOf(dishID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.QuantityOf(dishID)
}

func (s *Synchronizer) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Lines()
}

func (s *Synchronizer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}
