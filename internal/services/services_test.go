package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/afume/internal/database"
	"github.com/example/afume/internal/models"
	"github.com/example/afume/internal/utils"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := fmt.Sprintf("afume_services_test_%d", atomic.AddInt64(&testDBCounter, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestTokens() *utils.TokenCodec {
	return utils.NewTokenCodec("services-test-secret", "afume", 30*time.Minute, 14*24*time.Hour)
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Brand, models.Series) {
	t.Helper()
	brand := models.Brand{Name: "Maison Test"}
	require.NoError(t, db.Create(&brand).Error)
	series := models.Series{Name: "Woody"}
	require.NoError(t, db.Create(&series).Error)
	return brand, series
}
