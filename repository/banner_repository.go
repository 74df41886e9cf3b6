package repository

import (
	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

type BannerRepository struct {
	DB *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{DB: db}
}

func (r *BannerRepository) ListActive() ([]entity.Banner, error) {
	var banners []entity.Banner
	err := r.DB.
		Where("is_active = ?", true).
		Order("sort_order").
		Find(&banners).Error
	return banners, err
}

func (r *BannerRepository) ListAll() ([]entity.Banner, error) {
	var banners []entity.Banner
	err := r.DB.Order("sort_order").Find(&banners).Error
	return banners, err
}

func (r *BannerRepository) FindByID(id string) (*entity.Banner, error) {
	var banner entity.Banner
	if err := r.DB.Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *BannerRepository) Create(banner *entity.Banner) error {
	return r.DB.Create(banner).Error
}

func (r *BannerRepository) Update(banner *entity.Banner) error {
	return r.DB.Save(banner).Error
}

func (r *BannerRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.Banner{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BannerRepository) ToggleActive(id string) error {
	res := r.DB.Model(&entity.Banner{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
