package database

import (
	"testing"

	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would open its own empty memory database
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestPrepareReportsMissingTables(t *testing.T) {
	utils.InitLogger("text")
	db := openDB(t)
	require.NoError(t, db.AutoMigrate(&models.Order{}))

	missing, err := Prepare(db, false)
	require.NoError(t, err)
	assert.Contains(t, missing, "empresa_info")
	assert.Contains(t, missing, "cardapio")
	assert.NotContains(t, missing, "pedidos_goodzap")
}

func TestPrepareAutoMigrate(t *testing.T) {
	utils.InitLogger("text")
	db := openDB(t)

	missing, err := Prepare(db, true)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
