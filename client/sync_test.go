package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"menudia/pkg/pairing"
)

// fakeAPI is an in-memory cart persistence collaborator with the same
// semantics as the backend: upsert by dish, last write wins per request.
type fakeAPI struct {
	mu       sync.Mutex
	nextCart uint
	nextLine uint
	carts    map[string]*CartRecord
	byID     map[uint]*CartRecord
	prices   map[uint]int64 // dishID -> unit price the "server" would snapshot

	failGet    error
	failCreate error
	failAdd    error
	failUpdate error
	failRemove error
	failClear  error

	mutations   []string
	inFlight    int32
	maxInFlight int32
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		carts:  make(map[string]*CartRecord),
		byID:   make(map[uint]*CartRecord),
		prices: make(map[uint]int64),
	}
}

func (f *fakeAPI) enter() func() {
	n := atomic.AddInt32(&f.inFlight, 1)
	for {
		max := atomic.LoadInt32(&f.maxInFlight)
		if n <= max || atomic.CompareAndSwapInt32(&f.maxInFlight, max, n) {
			break
		}
	}
	return func() { atomic.AddInt32(&f.inFlight, -1) }
}

func (f *fakeAPI) GetCartBySession(_ context.Context, sessionID string) (*CartRecord, error) {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	rec, ok := f.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	cp := *rec
	cp.Items = append([]RemoteLine(nil), rec.Items...)
	return &cp, nil
}

func (f *fakeAPI) CreateCart(_ context.Context, sessionID string, userID uint) (*CartRecord, error) {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	if rec, ok := f.carts[sessionID]; ok {
		return rec, nil
	}
	f.nextCart++
	rec := &CartRecord{ID: f.nextCart, SessionID: sessionID, UserID: userID}
	f.carts[sessionID] = rec
	f.byID[rec.ID] = rec
	return rec, nil
}

func (f *fakeAPI) AddLine(_ context.Context, cartID, dishID uint, qty int, category pairing.Category) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, fmt.Sprintf("add %d", dishID))
	if f.failAdd != nil {
		return f.failAdd
	}
	rec, ok := f.byID[cartID]
	if !ok {
		return &RemoteRejectedError{Status: 404, Message: "cart not found"}
	}
	for i := range rec.Items {
		if rec.Items[i].DishID == dishID {
			rec.Items[i].Qty += qty
			return nil
		}
	}
	f.nextLine++
	rec.Items = append(rec.Items, RemoteLine{
		ID:        f.nextLine,
		DishID:    dishID,
		Category:  string(category),
		UnitPrice: f.prices[dishID],
		Qty:       qty,
	})
	return nil
}

func (f *fakeAPI) UpdateLineQty(_ context.Context, cartID, lineID uint, qty int) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, fmt.Sprintf("update %d", lineID))
	if f.failUpdate != nil {
		return f.failUpdate
	}
	rec, ok := f.byID[cartID]
	if !ok {
		return &RemoteRejectedError{Status: 404, Message: "cart not found"}
	}
	for i := range rec.Items {
		if rec.Items[i].ID == lineID {
			if qty <= 0 {
				rec.Items = append(rec.Items[:i], rec.Items[i+1:]...)
			} else {
				rec.Items[i].Qty = qty
			}
			return nil
		}
	}
	return &RemoteRejectedError{Status: 404, Message: "cart item not found"}
}

func (f *fakeAPI) RemoveLine(_ context.Context, cartID, lineID uint) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, fmt.Sprintf("remove %d", lineID))
	if f.failRemove != nil {
		return f.failRemove
	}
	rec, ok := f.byID[cartID]
	if !ok {
		return &RemoteRejectedError{Status: 404, Message: "cart not found"}
	}
	for i := range rec.Items {
		if rec.Items[i].ID == lineID {
			rec.Items = append(rec.Items[:i], rec.Items[i+1:]...)
			return nil
		}
	}
	return &RemoteRejectedError{Status: 404, Message: "cart item not found"}
}

func (f *fakeAPI) ClearCart(_ context.Context, cartID uint) error {
	defer f.enter()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, "clear")
	if f.failClear != nil {
		return f.failClear
	}
	rec, ok := f.byID[cartID]
	if !ok {
		return &RemoteRejectedError{Status: 404, Message: "cart not found"}
	}
	rec.Items = nil
	return nil
}

func newTestSync(t *testing.T) (*Synchronizer, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	api.prices[causa.ID] = causa.Price
	api.prices[lomo.ID] = lomo.Price
	return NewSynchronizer(api, NewMemoryStore(), 0), api
}

func TestAddItemCreatesCartAndSyncs(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if got := s.QuantityOf(causa.ID); got != 1 {
		t.Errorf("QuantityOf = %d, want 1", got)
	}
	lines := s.Lines()
	if len(lines) != 1 || lines[0].RemoteLineID == 0 {
		t.Errorf("ledger not hydrated from authoritative snapshot: %+v", lines)
	}
	if lines[0].UnitPrice != causa.Price {
		t.Errorf("UnitPrice = %d, want server snapshot %d", lines[0].UnitPrice, causa.Price)
	}
	if len(api.carts) != 1 {
		t.Errorf("expected exactly one remote cart, got %d", len(api.carts))
	}
}

func TestAddItemValidatesLocally(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, Dish{Category: pairing.Starter}); !errors.Is(err, ErrInvalidMutation) {
		t.Errorf("missing dish id: err = %v, want ErrInvalidMutation", err)
	}
	if err := s.AddItem(ctx, Dish{ID: 9, Category: "ENTRADA"}); !errors.Is(err, ErrInvalidMutation) {
		t.Errorf("unknown category: err = %v, want ErrInvalidMutation", err)
	}
	if len(api.mutations) != 0 {
		t.Errorf("invalid mutations must not reach the collaborator: %v", api.mutations)
	}
}

func TestRemoteRejectedLeavesLedgerUnchanged(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	api.failAdd = &RemoteRejectedError{Status: 500, Message: "boom"}
	err := s.AddItem(ctx, lomo)
	var rr *RemoteRejectedError
	if !errors.As(err, &rr) {
		t.Fatalf("err = %v, want RemoteRejectedError", err)
	}
	if got := s.QuantityOf(lomo.ID); got != 0 {
		t.Errorf("QuantityOf(lomo) = %d, want 0 after rejected add", got)
	}

	api.failAdd = nil
	api.failUpdate = &RemoteRejectedError{Status: 409, Message: "conflict"}
	if err := s.SetQuantity(ctx, causa.ID, 5); err == nil {
		t.Fatal("SetQuantity: expected error")
	}
	if got := s.QuantityOf(causa.ID); got != 1 {
		t.Errorf("QuantityOf(causa) = %d, want pre-mutation 1", got)
	}
}

func TestSetQuantityZeroRemovesRemotely(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.SetQuantity(ctx, causa.ID, 0); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if got := s.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	for _, rec := range api.byID {
		if len(rec.Items) != 0 {
			t.Errorf("remote cart still has items: %+v", rec.Items)
		}
	}
}

func TestSetQuantityAbsentDishIsNoop(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	before := len(api.mutations)
	if err := s.SetQuantity(ctx, 999, 3); err != nil {
		t.Fatalf("SetQuantity absent: %v", err)
	}
	if len(api.mutations) != before {
		t.Errorf("no-op issued remote mutations: %v", api.mutations[before:])
	}
}

func TestCartUnavailable(t *testing.T) {
	s, api := newTestSync(t)
	api.failGet = errors.New("connection refused")

	err := s.AddItem(context.Background(), causa)
	if !errors.Is(err, ErrCartUnavailable) {
		t.Errorf("err = %v, want ErrCartUnavailable", err)
	}
}

func TestRefreshReplacesLedgerWholesale(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// another device edits the same cart
	for _, rec := range api.byID {
		rec.Items[0].Qty = 7
		rec.Items = append(rec.Items, RemoteLine{ID: 99, DishID: lomo.ID, Category: string(pairing.Main), UnitPrice: lomo.Price, Qty: 2})
	}

	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := s.QuantityOf(causa.ID); got != 7 {
		t.Errorf("QuantityOf(causa) = %d, want 7", got)
	}
	if got := s.QuantityOf(lomo.ID); got != 2 {
		t.Errorf("QuantityOf(lomo) = %d, want 2", got)
	}
}

func TestAuthenticatedUserGetsStableSession(t *testing.T) {
	api := newFakeAPI()
	api.prices[causa.ID] = causa.Price
	s := NewSynchronizer(api, NewMemoryStore(), 42)

	if err := s.AddItem(context.Background(), causa); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, ok := api.carts["session-42"]; !ok {
		t.Errorf("expected cart under session-42, have %v", keys(api.carts))
	}
}

func TestMutationsAreSerialized(t *testing.T) {
	s, api := newTestSync(t)
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.AddItem(ctx, causa); err != nil {
				t.Errorf("AddItem: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := s.QuantityOf(causa.ID); got != n {
		t.Errorf("QuantityOf = %d, want %d", got, n)
	}
	if max := atomic.LoadInt32(&api.maxInFlight); max > 1 {
		t.Errorf("collaborator saw %d concurrent requests, want serialized", max)
	}
}

func keys(m map[string]*CartRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
