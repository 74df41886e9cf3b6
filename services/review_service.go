package services

import (
	"errors"

	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/repository"
)

var ErrBadRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	Repo   *repository.ReviewRepository
	Notify Notifier
}

func NewReviewService(repo *repository.ReviewRepository, notify Notifier) *ReviewService {
	return &ReviewService{Repo: repo, Notify: notify}
}

// Create stores the review unapproved; it stays off the public listing
// until staff approve it.
func (s *ReviewService) Create(name string, rating int, comment string) (*entity.Review, bool, error) {
	if rating < 1 || rating > 5 {
		return nil, false, ErrBadRating
	}
	review := entity.Review{
		CustomerName: name,
		Rating:       rating,
		Comment:      comment,
		Source:       entity.ReviewSourceSite,
		IsApproved:   false,
	}
	if err := s.Repo.Create(&review); err != nil {
		return nil, false, err
	}
	notified := s.Notify.NotifyReview(&review)
	return &review, notified, nil
}

// SaveChatReview stores a review captured in the Telegram chat flow.
// Chat reviews carry no rating and go through the same approval queue;
// the relay forwards them to staff itself, so nothing is notified here.
func (s *ReviewService) SaveChatReview(author, comment string) error {
	review := entity.Review{
		CustomerName: author,
		Comment:      comment,
		Source:       entity.ReviewSourceTelegram,
		IsApproved:   false,
	}
	return s.Repo.Create(&review)
}
