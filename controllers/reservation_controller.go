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

type ReservationController struct {
	Svc  *services.ReservationService
	Repo *repository.ReservationRepository
}

func NewReservationController(svc *services.ReservationService, repo *repository.ReservationRepository) *ReservationController {
	return &ReservationController{Svc: svc, Repo: repo}
}

// POST /api/reservations (public)
func (ctl *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadSchedule) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, res)
}

// GET /api/admin/reservations
func (ctl *ReservationController) ListAll(c *gin.Context) {
	reservations, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}

// PATCH /api/admin/reservations/:id/status
func (ctl *ReservationController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Svc.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case err == nil:
		resp.Message(c, "reservation status updated")
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "reservation not found")
	case errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// DELETE /api/admin/reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "reservation not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "reservation deleted")
}
