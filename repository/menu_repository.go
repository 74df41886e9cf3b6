package repository

import (
	"errors"

	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a menu item references a
// category id with no matching row. The reference is validated here
// rather than left to the database (sqlite ships with foreign keys
// off).
var ErrCategoryNotFound = errors.New("category not found")

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// listOrder gives menu listings their display order: category sort
// order first, then item sort order, then the primary-language name.
func (r *MenuRepository) listOrder() *gorm.DB {
	return r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Order("categories.sort_order, menu_items.sort_order, menu_items.name_ru")
}

func (r *MenuRepository) ListActive() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.listOrder().Where("menu_items.is_active = ?", true).Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.listOrder().Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListByCategory(categoryID string, activeOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Where("category_id = ?", categoryID).Order("sort_order, name_ru")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	if err := r.categoryExists(item.CategoryID); err != nil {
		return err
	}
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	if err := r.categoryExists(item.CategoryID); err != nil {
		return err
	}
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) ToggleActive(id string) error {
	res := r.DB.Model(&entity.MenuItem{}).
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

func (r *MenuRepository) categoryExists(id string) error {
	var count int64
	if err := r.DB.Model(&entity.Category{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
