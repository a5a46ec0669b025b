package services

import (
	"errors"
	"strings"

	"menudia/entity"
	"menudia/pkg/pairing"
	"menudia/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrIncompleteMenu rejects checkout while starters and mains do not pair
// exactly 1:1.
var ErrIncompleteMenu = errors.New("cart does not form complete menus")

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: or, CartRepo: cr}
}

// Checkout turns an eligible cart into a persisted order and empties the
// cart, all in one transaction. The breakdown is recomputed from the stored
// cart here; client-side derived state is never trusted.
func (s *OrderService) Checkout(cartID, userID uint) (*entity.Order, error) {
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetByID(tx, cartID)
		if err != nil {
			return err
		}

		lines := cartLines(c.Items)
		b := pairing.Compute(lines)
		if !b.Eligible() {
			return ErrIncompleteMenu
		}

		o := &entity.Order{
			Number:    newOrderNumber(),
			UserID:    userID,
			MenuCount: b.CompleteMenus,
			Total:     pairing.TotalPrice(lines),
		}
		for _, it := range c.Items {
			o.Items = append(o.Items, entity.OrderItem{
				DishID:    it.DishID,
				DishName:  it.Dish.Name,
				Category:  it.Category,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.Total,
			})
		}
		if err := s.Repo.Create(tx, o); err != nil {
			return err
		}
		if err := s.CartRepo.Clear(tx, c.ID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

func newOrderNumber() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
