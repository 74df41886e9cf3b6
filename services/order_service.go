package services

import (
	"errors"

	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/repository"
)

var (
	ErrEmptyOrder          = errors.New("order has no items")
	ErrBadQuantity         = errors.New("quantity must be at least 1")
	ErrMenuItemUnavailable = errors.New("menu item not found or inactive")
	ErrInvalidStatus       = errors.New("unknown status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrStatusConflict      = errors.New("status changed concurrently")
)

type OrderService struct {
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notify   Notifier

	DeliveryFee float64
}

func NewOrderService(repo *repository.OrderRepository, menuRepo *repository.MenuRepository, notify Notifier, deliveryFee float64) *OrderService {
	return &OrderService{Repo: repo, MenuRepo: menuRepo, Notify: notify, DeliveryFee: deliveryFee}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	CustomerName   string        `json:"customerName" binding:"required"`
	CustomerPhone  string        `json:"customerPhone" binding:"required"`
	Address        string        `json:"address"`
	Items          []OrderItemIn `json:"items" binding:"required,dive"`
	DeliveryMethod string        `json:"deliveryMethod" binding:"required,oneof=delivery pickup"`
	PaymentMethod  string        `json:"paymentMethod" binding:"required,oneof=cash card"`
	Comment        string        `json:"comment"`
}

type CreateOrderRes struct {
	ID       string  `json:"id"`
	Total    float64 `json:"total"`
	Notified bool    `json:"notified"`
}

// Create persists the order first and only then relays it to staff, so
// a lost chat message never loses the order itself.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	lines := make([]entity.OrderLine, 0, len(req.Items))
	var subtotal float64
	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, ErrBadQuantity
		}
		item, err := s.MenuRepo.FindByID(in.MenuItemID)
		if err != nil {
			return nil, ErrMenuItemUnavailable
		}
		if !item.IsActive {
			return nil, ErrMenuItemUnavailable
		}
		lines = append(lines, entity.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name.RU,
			Price:      item.Price,
			Quantity:   in.Quantity,
		})
		subtotal += item.Price * float64(in.Quantity)
	}

	fee := 0.0
	if req.DeliveryMethod == "delivery" {
		fee = s.DeliveryFee
	}

	order := entity.Order{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Address:        req.Address,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Total:          subtotal + fee,
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
		Status:         entity.OrderPending,
		Comment:        req.Comment,
	}
	if err := order.SetLines(lines); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(&order); err != nil {
		return nil, err
	}

	notified := s.Notify.NotifyOrder(&order, lines)
	return &CreateOrderRes{ID: order.ID, Total: order.Total, Notified: notified}, nil
}

// UpdateStatus applies a guarded transition pending → confirmed →
// preparing → ready → delivered, with cancellation from any
// non-terminal state.
func (s *OrderService) UpdateStatus(id string, next entity.OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	order, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	affected, err := s.Repo.UpdateStatusGuard(id, order.Status, next)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}
