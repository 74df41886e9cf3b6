package repository

import (
	"testing"

	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func loc(s string) entity.Localized {
	return entity.Localized{RU: s, EN: s, TJ: s, UZ: s}
}

func mustCreateCategory(t *testing.T, db *gorm.DB, id string, sortOrder int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Category{
		ID: id, Name: loc(id), SortOrder: sortOrder, IsActive: true,
	}).Error)
}
