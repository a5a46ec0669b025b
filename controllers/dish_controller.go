package controllers

import (
	"errors"
	"strconv"

	"menudia/pkg/resp"
	"menudia/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController { return &DishController{Svc: s} }

// GET /dishes?type=MAIN
func (h *DishController) List(c *gin.Context) {
	dishes, err := h.Svc.ListActive(c.Query("type"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/:id
func (h *DishController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	d, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// POST /dishes (admin)
func (h *DishController) Create(c *gin.Context) {
	var req services.CreateDishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, d)
}
