package repo

import (
	"context"
	"path/filepath"
	"testing"

	"notedeck/app/db"
	"notedeck/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with foreign keys enabled, so
// the tests exercise the real constraints instead of mocks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Note{}))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func mustCreateUser(t *testing.T, users *UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "secret"}
	require.NoError(t, users.Create(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func mustCreateNote(t *testing.T, notes *NoteRepository, userID uint, title string, important bool) *models.Note {
	t.Helper()
	n := &models.Note{Title: title, Content: "content of " + title, IsImportant: important, UserID: userID}
	require.NoError(t, notes.Create(context.Background(), n))
	require.NotZero(t, n.ID)
	return n
}
