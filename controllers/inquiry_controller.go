package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/services"
)

// Banquet-hall inquiries are relayed to staff only; nothing is stored.
type InquiryController struct {
	Notify services.Notifier
}

func NewInquiryController(notify services.Notifier) *InquiryController {
	return &InquiryController{Notify: notify}
}

type CreateInquiryReq struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// POST /api/inquiries (public)
func (ctl *InquiryController) Create(c *gin.Context) {
	var req CreateInquiryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	notified := ctl.Notify.NotifyInquiry(req.CustomerName, req.CustomerPhone, req.Message)
	resp.OK(c, gin.H{"notified": notified})
}
