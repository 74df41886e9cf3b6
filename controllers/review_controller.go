package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/services"
	"gorm.io/gorm"
)

type ReviewController struct {
	Svc  *services.ReviewService
	Repo *repository.ReviewRepository
}

func NewReviewController(svc *services.ReviewService, repo *repository.ReviewRepository) *ReviewController {
	return &ReviewController{Svc: svc, Repo: repo}
}

type CreateReviewReq struct {
	CustomerName string `json:"customerName" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// GET /api/reviews (public, approved only)
func (ctl *ReviewController) List(c *gin.Context) {
	reviews, err := ctl.Repo.ListApproved()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /api/reviews (public)
func (ctl *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, notified, err := ctl.Svc.Create(req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrBadRating) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"id": review.ID, "notified": notified})
}

// GET /api/admin/reviews
func (ctl *ReviewController) ListAll(c *gin.Context) {
	reviews, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// PATCH /api/admin/reviews/:id/approve
func (ctl *ReviewController) Approve(c *gin.Context) {
	if err := ctl.Repo.Approve(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "review approved")
}

// DELETE /api/admin/reviews/:id
func (ctl *ReviewController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "review deleted")
}
