package services

import (
	"testing"

	"dameningen/internal/db"
	"dameningen/internal/models"
	"dameningen/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 给每个测试一个干净的 sqlite 内存库
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	db.DB = gdb

	// TDN 结果有 60 秒缓存，测试之间要清掉
	utils.GetCache().Delete(tdnCacheKey)
}

func createTestUser(t *testing.T, id, name string) models.User {
	t.Helper()
	user := models.User{
		ID:       id,
		Name:     name,
		Email:    id + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}
