package client

import "menudia/pkg/pairing"

// Dish is the catalog entry as the ordering UI sees it.
type Dish struct {
	ID          uint
	Name        string
	Description string
	Category    pairing.Category
	Price       int64 // céntimos
	ImageURL    string
}

// CartLine is one ledger line. RemoteLineID is zero until the line has been
// seen in an authoritative snapshot from the cart service.
type CartLine struct {
	DishID       uint
	RemoteLineID uint
	Category     pairing.Category
	UnitPrice    int64
	Qty          int
}

// Ledger is the ordered local cart state, one line per dish. All derived
// values (totals, breakdown, messages) are recomputed from it on read.
type Ledger struct {
	lines []CartLine
	index map[uint]int // dishID -> position in lines
}

func NewLedger() *Ledger {
	return &Ledger{index: make(map[uint]int)}
}

// AddItem inserts a line with qty 1, or bumps the existing line for the
// same dish. Unit price is snapshotted from the dish.
func (l *Ledger) AddItem(d Dish) {
	if i, ok := l.index[d.ID]; ok {
		l.lines[i].Qty++
		return
	}
	l.index[d.ID] = len(l.lines)
	l.lines = append(l.lines, CartLine{
		DishID:    d.ID,
		Category:  d.Category,
		UnitPrice: d.Price,
		Qty:       1,
	})
}

// SetQuantity sets (not increments) the quantity. Zero or below removes the
// line; an absent dish is a no-op.
func (l *Ledger) SetQuantity(dishID uint, qty int) {
	i, ok := l.index[dishID]
	if !ok {
		return
	}
	if qty <= 0 {
		l.RemoveItem(dishID)
		return
	}
	l.lines[i].Qty = qty
}

func (l *Ledger) RemoveItem(dishID uint) {
	i, ok := l.index[dishID]
	if !ok {
		return
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	delete(l.index, dishID)
	for j := i; j < len(l.lines); j++ {
		l.index[l.lines[j].DishID] = j
	}
}

func (l *Ledger) Clear() {
	l.lines = nil
	l.index = make(map[uint]int)
}

// QuantityOf returns 0 for an absent dish.
func (l *Ledger) QuantityOf(dishID uint) int {
	if i, ok := l.index[dishID]; ok {
		return l.lines[i].Qty
	}
	return 0
}

func (l *Ledger) Len() int { return len(l.lines) }

// Lines returns a copy; callers cannot mutate the ledger through it.
func (l *Ledger) Lines() []CartLine {
	out := make([]CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Replace swaps in an authoritative snapshot wholesale.
func (l *Ledger) Replace(lines []CartLine) {
	l.lines = make([]CartLine, 0, len(lines))
	l.index = make(map[uint]int, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			continue // a line at zero must not exist
		}
		if i, ok := l.index[line.DishID]; ok {
			l.lines[i].Qty += line.Qty
			continue
		}
		l.index[line.DishID] = len(l.lines)
		l.lines = append(l.lines, line)
	}
}

func (l *Ledger) pairingLines() []pairing.Line {
	out := make([]pairing.Line, 0, len(l.lines))
	for _, line := range l.lines {
		out = append(out, pairing.Line{
			DishID:    line.DishID,
			Category:  line.Category,
			UnitPrice: line.UnitPrice,
			Qty:       line.Qty,
		})
	}
	return out
}
