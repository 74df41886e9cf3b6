package repository

import (
	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) ListAll() ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Order("date, time").Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) FindByID(id string) (*entity.Reservation, error) {
	var reservation entity.Reservation
	if err := r.DB.Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) UpdateStatus(id string, status entity.ReservationStatus) error {
	res := r.DB.Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
