package repository

import (
	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) ListApproved() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id string) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Approve(id string) error {
	res := r.DB.Model(&entity.Review{}).
		Where("id = ?", id).
		Update("is_approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
