package controllers

import (
	"errors"
	"strconv"

	"menudia/pkg/resp"
	"menudia/services"
	"menudia/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
	// phone number the customer transfers to; printed on the ticket
	PaymentPhone string
}

func NewOrderController(s *services.OrderService, paymentPhone string) *OrderController {
	return &OrderController{Svc: s, PaymentPhone: paymentPhone}
}

// POST /orders runs the server-side checkout of a cart
func (h *OrderController) Create(c *gin.Context) {
	var body struct {
		CartID uint `json:"cartId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(body.CartID, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrIncompleteMenu) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order, "paymentPhone": h.PaymentPhone})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if order.UserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, order)
}

// GET /profile/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
