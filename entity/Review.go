package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReviewSourceSite     = "site"
	ReviewSourceTelegram = "telegram"
)

type Review struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"` // 1..5 from the site, 0 from chat
	Comment      string    `json:"comment"`
	Source       string    `json:"source"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
