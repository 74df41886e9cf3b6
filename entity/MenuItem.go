package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        Localized `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description Localized `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	CategoryID string   `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"` // preload only when needed
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
