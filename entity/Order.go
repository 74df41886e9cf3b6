package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLine is one position of an order. The list is serialized into
// Order.Items as JSON; menu prices are copied in at checkout time so a
// later menu edit does not rewrite history.
type OrderLine struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID            string `gorm:"primaryKey" json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`

	Items       string  `gorm:"type:text" json:"items"` // JSON-encoded []OrderLine
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`

	DeliveryMethod string      `json:"deliveryMethod"` // delivery | pickup
	PaymentMethod  string      `json:"paymentMethod"`  // cash | card
	Status         OrderStatus `json:"status"`
	Comment        string      `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (o *Order) Lines() ([]OrderLine, error) {
	if o.Items == "" {
		return nil, nil
	}
	var lines []OrderLine
	if err := json.Unmarshal([]byte(o.Items), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (o *Order) SetLines(lines []OrderLine) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	o.Items = string(b)
	return nil
}
