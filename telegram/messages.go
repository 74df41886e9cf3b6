package telegram

import (
	"fmt"
	"strings"

	"github.com/phonkluver/forel-app-sub000/entity"
)

const (
	StartCmd = "start"

	LeaveReviewAction = "leave_review"
	CancelAction      = "cancel"
)

const (
	welcomeText = "Добро пожаловать в ресторан «Форель»! 🐟\n" +
		"Здесь вы можете оставить отзыв о нашей кухне и обслуживании."
	askReviewText    = "Напишите ваш отзыв одним сообщением."
	reviewThanksText = "Спасибо за отзыв! Мы обязательно его прочитаем."
	cancelledText    = "Хорошо, отменено."

	leaveReviewButton = "Оставить отзыв"
	cancelButton      = "Отмена"
)

func formatOrder(order *entity.Order, lines []entity.OrderLine) string {
	var b strings.Builder
	b.WriteString("<b>🛒 Новый заказ</b>\n")
	fmt.Fprintf(&b, "Имя: %s\nТелефон: %s\n", order.CustomerName, order.CustomerPhone)
	if order.Address != "" {
		fmt.Fprintf(&b, "Адрес: %s\n", order.Address)
	}
	fmt.Fprintf(&b, "Способ: %s, оплата: %s\n\n", order.DeliveryMethod, order.PaymentMethod)
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s ×%d — %.2f\n", line.Name, line.Quantity, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\n<b>Итого: %.2f</b>", order.Total)
	if order.Comment != "" {
		fmt.Fprintf(&b, "\nКомментарий: %s", order.Comment)
	}
	return b.String()
}

func formatReservation(r *entity.Reservation) string {
	s := fmt.Sprintf("<b>📅 Бронь столика</b>\nИмя: %s\nТелефон: %s\nДата: %s %s\nГостей: %d",
		r.CustomerName, r.CustomerPhone, r.Date, r.Time, r.Guests)
	if r.TablePreference != "" {
		s += "\nПожелание: " + r.TablePreference
	}
	return s
}

func formatReview(r *entity.Review) string {
	return fmt.Sprintf("<b>⭐ Новый отзыв</b>\nОт: %s\nОценка: %d/5\n\n%s",
		r.CustomerName, r.Rating, r.Comment)
}

func formatInquiry(name, phone, message string) string {
	return fmt.Sprintf("<b>💍 Запрос по банкетному залу</b>\nИмя: %s\nТелефон: %s\n\n%s",
		name, phone, message)
}
