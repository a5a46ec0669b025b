package repository

import (
	"errors"

	"menudia/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetBySession returns the cart with its items, or ErrRecordNotFound so the
// controller can answer 404 and the client can create one.
func (r *CartRepository) GetBySession(sessionID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at") }).
		Preload("Items.Dish").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetByID(tx *gorm.DB, cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at") }).
		Preload("Items.Dish").
		First(&c, cartID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate reads the session's cart or creates an empty one. Claims the
// cart for the user when it was created anonymously and the user logs in.
func (r *CartRepository) GetOrCreate(sessionID string, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: sessionID, UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	if userID != 0 && c.UserID == 0 {
		c.UserID = userID
		if err := r.DB.Save(&c).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// UpsertItem merges by dish: a second add of the same dish accumulates the
// quantity instead of creating a duplicate line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND dish_id = ?", cartID, row.DishID).First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty sets (not increments) the quantity. Zero or negative removes the
// line; no row is ever kept at qty 0.
func (r *CartRepository) UpdateQty(tx *gorm.DB, cartID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, cartID, itemID)
	}
	res := tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ? AND cart_id = ?
	`, qty, qty, itemID, cartID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) error {
	res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) Clear(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
