package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocle-dev/notebook/internal/models"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "notes.db?_foreign_keys=on", withForeignKeys("notes.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "notes.db?_fk=1", withForeignKeys("notes.db?_fk=1"))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestMigrateDatabase_CreatesTablesAndCascades(t *testing.T) {
	conn, err := Connect(DriverSQLite, "file:migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	require.NoError(t, MigrateDatabase(conn))
	// Running twice must be harmless.
	require.NoError(t, MigrateDatabase(conn))

	assert.True(t, conn.Migrator().HasTable(&models.User{}))
	assert.True(t, conn.Migrator().HasTable(&models.Note{}))

	user := models.User{Email: "owner@example.com", FirstName: "Owner", PasswordHash: "x"}
	require.NoError(t, conn.Create(&user).Error)
	require.NoError(t, conn.Create(&models.Note{Title: "t", Body: "b", UserID: user.ID}).Error)

	require.NoError(t, conn.Delete(&user).Error)

	var remaining int64
	require.NoError(t, conn.Model(&models.Note{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
