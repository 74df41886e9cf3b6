package services

import (
	"errors"
	"time"

	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/repository"
)

var ErrBadSchedule = errors.New("invalid date or time")

type ReservationService struct {
	Repo   *repository.ReservationRepository
	Notify Notifier
}

func NewReservationService(repo *repository.ReservationRepository, notify Notifier) *ReservationService {
	return &ReservationService{Repo: repo, Notify: notify}
}

type CreateReservationReq struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	TablePreference string `json:"tablePreference"`
}

type CreateReservationRes struct {
	ID       string `json:"id"`
	Notified bool   `json:"notified"`
}

func (s *ReservationService) Create(req *CreateReservationReq) (*CreateReservationRes, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrBadSchedule
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrBadSchedule
	}

	reservation := entity.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		TablePreference: req.TablePreference,
		Status:          entity.ReservationPending,
	}
	if err := s.Repo.Create(&reservation); err != nil {
		return nil, err
	}

	notified := s.Notify.NotifyReservation(&reservation)
	return &CreateReservationRes{ID: reservation.ID, Notified: notified}, nil
}

func (s *ReservationService) UpdateStatus(id string, status entity.ReservationStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(id, status)
}
