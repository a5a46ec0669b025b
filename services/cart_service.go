package services

import (
	"errors"

	"menudia/entity"
	"menudia/pkg/pairing"
	"menudia/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	DishRepo *repository.DishRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr}
}

type AddItemIn struct {
	DishID   uint   `json:"dishId" binding:"required"`
	Quantity int    `json:"quantity"`
	Category string `json:"itemType"` // informational; the dish record is authoritative
}

// CartSummary is derived from the stored cart on every request.
type CartSummary struct {
	Cart              *entity.Cart `json:"cart"`
	ItemCount         int          `json:"itemCount"`
	TotalAmount       int64        `json:"totalAmount"`
	TotalStarters     int          `json:"totalStarters"`
	TotalMains        int          `json:"totalMains"`
	CompleteMenus     int          `json:"completeMenus"`
	StarterSurplus    int          `json:"starterSurplus"`
	MainSurplus       int          `json:"mainSurplus"`
	Eligible          bool         `json:"eligible"`
	ValidationMessage string       `json:"validationMessage"`
}

func (s *CartService) GetOrCreate(sessionID string, userID uint) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("sessionId is required")
	}
	c, err := s.CartRepo.GetOrCreate(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetByID(s.DB, c.ID)
}

func (s *CartService) GetBySession(sessionID string) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetBySession(sessionID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

// Summary recomputes the menu breakdown for a session's cart. Nothing here
// is cached; the stored items are the single source of truth.
func (s *CartService) Summary(sessionID string) (*CartSummary, error) {
	c, err := s.CartRepo.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	lines := cartLines(c.Items)
	b := pairing.Compute(lines)

	itemCount := 0
	for _, it := range c.Items {
		itemCount += it.Qty
	}
	return &CartSummary{
		Cart:              c,
		ItemCount:         itemCount,
		TotalAmount:       pairing.TotalPrice(lines),
		TotalStarters:     b.TotalStarters,
		TotalMains:        b.TotalMains,
		CompleteMenus:     b.CompleteMenus,
		StarterSurplus:    b.StarterSurplus,
		MainSurplus:       b.MainSurplus,
		Eligible:          b.Eligible(),
		ValidationMessage: b.ValidationMessage(),
	}, nil
}

// AddItem appends a dish to the cart. Category and unit price are
// snapshotted from the dish record, not taken from the request.
func (s *CartService) AddItem(cartID uint, in *AddItemIn) error {
	if in.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	if _, err := s.CartRepo.GetByID(s.DB, cartID); err != nil {
		return err
	}

	d, err := s.DishRepo.FindByID(in.DishID)
	if err != nil {
		return err
	}
	if d.Status != entity.DishActive {
		return errors.New("dish is not available today")
	}
	cat, err := pairing.ParseCategory(d.Category)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		DishID:    d.ID,
		Category:  string(cat),
		Qty:       in.Quantity,
		UnitPrice: d.Price,
		Total:     d.Price * int64(in.Quantity),
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cartID, line)
	})
}

func (s *CartService) UpdateQty(cartID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, cartID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(cartID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, cartID, itemID)
	})
}

func (s *CartService) Clear(cartID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, cartID)
	})
}

func cartLines(items []entity.CartItem) []pairing.Line {
	lines := make([]pairing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pairing.Line{
			DishID:    it.DishID,
			Category:  pairing.Category(it.Category),
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
		})
	}
	return lines
}
