package configs

import (
	"errors"
	"log"

	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/gorm"
)

// DefaultCategories is the fixed catalog the site starts with. IDs are
// stable so the frontend can link to them; sort order is 1..13.
func DefaultCategories() []entity.Category {
	name := func(ru, en, tj, uz string) entity.Localized {
		return entity.Localized{RU: ru, EN: en, TJ: tj, UZ: uz}
	}
	cats := []entity.Category{
		{ID: "salads", Name: name("Салаты", "Salads", "Хӯришҳо", "Salatlar")},
		{ID: "soups", Name: name("Супы", "Soups", "Шӯрбоҳо", "Sho'rvalar")},
		{ID: "hot-dishes", Name: name("Горячие блюда", "Hot dishes", "Таомҳои гарм", "Issiq taomlar")},
		{ID: "kebab", Name: name("Шашлыки", "Kebabs", "Сихкабобҳо", "Shashliklar")},
		{ID: "fish", Name: name("Рыбные блюда", "Fish dishes", "Таомҳои моҳӣ", "Baliq taomlari")},
		{ID: "pizza", Name: name("Пицца", "Pizza", "Питса", "Pitsa")},
		{ID: "burgers", Name: name("Бургеры", "Burgers", "Бургерҳо", "Burgerlar")},
		{ID: "pasta", Name: name("Паста", "Pasta", "Паста", "Pasta")},
		{ID: "garnish", Name: name("Гарниры", "Side dishes", "Гарнирҳо", "Garnirlar")},
		{ID: "sauces", Name: name("Соусы", "Sauces", "Чошниҳо", "Souslar")},
		{ID: "bread", Name: name("Лепёшки", "Bread", "Нонҳо", "Nonlar")},
		{ID: "desserts", Name: name("Десерты", "Desserts", "Ширинӣ", "Shirinliklar")},
		{ID: "drinks", Name: name("Напитки", "Drinks", "Нӯшокиҳо", "Ichimliklar")},
	}
	for i := range cats {
		cats[i].SortOrder = i + 1
		cats[i].IsActive = true
	}
	return cats
}

// SeedCategories inserts only the default categories whose id is not
// already present, so re-running it never duplicates or overwrites.
func SeedCategories(db *gorm.DB) error {
	for _, cat := range DefaultCategories() {
		var existing entity.Category
		err := db.Where("id = ?", cat.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	log.Println("default categories seeded")
	return nil
}
