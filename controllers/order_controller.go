package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/services"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc  *services.OrderService
	Repo *repository.OrderRepository
}

func NewOrderController(svc *services.OrderService, repo *repository.OrderRepository) *OrderController {
	return &OrderController{Svc: svc, Repo: repo}
}

// POST /api/orders (public)
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) ||
			errors.Is(err, services.ErrBadQuantity) ||
			errors.Is(err, services.ErrMenuItemUnavailable) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, res)
}

// GET /api/admin/orders
func (ctl *OrderController) ListAll(c *gin.Context) {
	orders, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/admin/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// PATCH /api/admin/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Svc.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case err == nil:
		resp.Message(c, "order status updated")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrStatusConflict):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// DELETE /api/admin/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "order deleted")
}
