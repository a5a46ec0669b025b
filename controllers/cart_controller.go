package controllers

import (
	"errors"
	"strconv"

	"menudia/pkg/resp"
	"menudia/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /cart gets or creates a cart for a session
func (h *CartController) Create(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
		UserID    uint   `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.GetOrCreate(body.SessionID, body.UserID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// GET /cart/session/:sessionId
func (h *CartController) GetBySession(c *gin.Context) {
	cart, subtotal, err := h.Svc.GetBySession(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "items": cart.Items, "totalAmount": subtotal, "id": cart.ID})
}

// GET /cart/session/:sessionId/summary
func (h *CartController) Summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// POST /carts/:cartId/items
func (h *CartController) AddItem(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}

	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddItem(cartID, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PUT /carts/:cartId/items/:itemId
func (h *CartController) UpdateItem(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(cartID, uint(itemID), body.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /carts/:cartId/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(cartID, uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /carts/:cartId/clear
func (h *CartController) Clear(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(cartID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

func cartIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("cartId"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid cart id")
		return 0, false
	}
	return uint(id), true
}
