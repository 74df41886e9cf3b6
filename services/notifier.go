package services

import "github.com/phonkluver/forel-app-sub000/entity"

// Notifier relays customer submissions to restaurant staff. Sends are
// fire-and-forget: false means the message did not go out, and the
// request flow continues regardless.
type Notifier interface {
	NotifyOrder(order *entity.Order, lines []entity.OrderLine) bool
	NotifyReservation(reservation *entity.Reservation) bool
	NotifyReview(review *entity.Review) bool
	NotifyInquiry(name, phone, message string) bool
}

// NopNotifier is used when no bot token is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyOrder(*entity.Order, []entity.OrderLine) bool { return false }
func (NopNotifier) NotifyReservation(*entity.Reservation) bool         { return false }
func (NopNotifier) NotifyReview(*entity.Review) bool                   { return false }
func (NopNotifier) NotifyInquiry(string, string, string) bool          { return false }
