package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/phonkluver/forel-app-sub000/entity"
)

// sender is the slice of the bot API the relay uses for outbound
// traffic. Tests substitute a fake.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// ReviewSink stores reviews captured in chat. services.ReviewService
// satisfies it.
type ReviewSink interface {
	SaveChatReview(author, comment string) error
}

// Bot relays customer submissions to the staff channel and runs the
// small per-chat review flow (idle / awaiting_review).
type Bot struct {
	api         sender
	poller      *tgbotapi.BotAPI
	states      StateStore
	reviews     ReviewSink
	adminChatID int64
}

func New(token string, adminChatID int64, states StateStore, reviews ReviewSink) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{api: api, poller: api, states: states, reviews: reviews, adminChatID: adminChatID}, nil
}

// Run long-polls for chat updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.poller.GetUpdatesChan(u)
	log.Println("telegram relay polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.poller.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("answer callback: %v", err)
	}

	switch cb.Data {
	case LeaveReviewAction:
		b.states.Set(chatID, StateAwaitingReview)
		b.sendText(chatID, askReviewText)
	case CancelAction:
		b.states.Set(chatID, StateIdle)
		b.sendText(chatID, cancelledText)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == StartCmd {
		welcome := tgbotapi.NewMessage(chatID, welcomeText)
		welcome.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(leaveReviewButton, LeaveReviewAction),
				tgbotapi.NewInlineKeyboardButtonData(cancelButton, CancelAction),
			),
		)
		if _, err := b.api.Send(welcome); err != nil {
			log.Printf("send welcome: %v", err)
		}
		return
	}

	if b.states.Get(chatID) == StateAwaitingReview && msg.Text != "" {
		b.states.Set(chatID, StateIdle)

		from := msg.Chat.FirstName
		if msg.From != nil && msg.From.UserName != "" {
			from = "@" + msg.From.UserName
		}
		if b.reviews != nil {
			if err := b.reviews.SaveChatReview(from, msg.Text); err != nil {
				log.Printf("save chat review: %v", err)
			}
		}
		b.send(b.adminChatID, fmt.Sprintf("<b>⭐ Отзыв из Telegram</b>\nОт: %s\n\n%s", from, msg.Text))
		b.sendText(chatID, reviewThanksText)
	}
}

// ----- outbound notifications (services.Notifier) -----

func (b *Bot) NotifyOrder(order *entity.Order, lines []entity.OrderLine) bool {
	return b.send(b.adminChatID, formatOrder(order, lines))
}

func (b *Bot) NotifyReservation(r *entity.Reservation) bool {
	return b.send(b.adminChatID, formatReservation(r))
}

func (b *Bot) NotifyReview(r *entity.Review) bool {
	return b.send(b.adminChatID, formatReview(r))
}

func (b *Bot) NotifyInquiry(name, phone, message string) bool {
	return b.send(b.adminChatID, formatInquiry(name, phone, message))
}

// send delivers HTML-formatted text. A failed send is logged and
// reported as false, never as an error.
func (b *Bot) send(chatID int64, text string) bool {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram send to %d failed: %v", chatID, err)
		return false
	}
	return true
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram send to %d failed: %v", chatID, err)
	}
}
