package repository

import (
	"errors"

	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

// ErrCategoryInUse is returned when deleting a category that still has
// menu items referencing it.
var ErrCategoryInUse = errors.New("category has menu items")

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) ListActive() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Where("is_active = ?", true).
		Order("sort_order, name_ru").
		Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) ListAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("sort_order, name_ru").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("id = ?", id).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// Update expects a fully-formed category; partial updates are
// fetch-then-merge at the caller.
func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

// Delete refuses to remove a category that still has menu items, so
// items can never be orphaned by a category removal.
func (r *CategoryRepository) Delete(id string) error {
	var count int64
	if err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	res := r.DB.Delete(&entity.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToggleActive flips is_active and nothing else.
func (r *CategoryRepository) ToggleActive(id string) error {
	res := r.DB.Model(&entity.Category{}).
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
