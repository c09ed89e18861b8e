package repo

import (
	"context"
	"testing"
	"time"

	"notedeck/app/dto"
	"notedeck/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreateStampsTimestamp(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	u := mustCreateUser(t, users, "johndoe")

	// the caller-supplied timestamp must be discarded
	n := &models.Note{Title: "Getting Started", Content: "hello", UserID: u.ID,
		CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)}
	before := time.Now().Add(-time.Second)
	require.NoError(t, notes.Create(ctx, n))
	assert.True(t, n.CreatedAt.After(before), "createdAt must be server-assigned at insert time")

	got, err := notes.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, n.CreatedAt.Unix(), got.CreatedAt.Unix())
	assert.False(t, got.IsImportant)
}

func TestNoteTimestampStoredAsEpochSeconds(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)

	u := mustCreateUser(t, users, "johndoe")
	n := mustCreateNote(t, notes, u.ID, "Getting Started", false)

	// the column must hold a plain integer, round-trippable through time.Time
	var stored int64
	require.NoError(t, gdb.Raw("SELECT created_at FROM notes WHERE id = ?", n.ID).Scan(&stored).Error)
	assert.Equal(t, n.CreatedAt.Unix(), stored)
	assert.WithinDuration(t, time.Now(), time.Unix(stored, 0), 5*time.Second)
}

func TestNoteForeignKeyViolation(t *testing.T) {
	gdb := newTestDB(t)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	err := notes.Create(ctx, &models.Note{Title: "Orphan", Content: "x", UserID: 4242})
	require.Error(t, err)
	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ConstraintForeignKey, ce.Kind)
	assert.Equal(t, "user_id", ce.Field)
}

func TestNoteCascadeOnUserDelete(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	john := mustCreateUser(t, users, "johndoe")
	jane := mustCreateUser(t, users, "janedoe")
	mustCreateNote(t, notes, john.ID, "Getting Started", true)
	mustCreateNote(t, notes, john.ID, "SQLite Setup", false)
	mustCreateNote(t, notes, jane.ID, "My First Note", false)

	_, err := users.Delete(ctx, john.ID)
	require.NoError(t, err)

	johns, err := notes.ListByUserID(ctx, john.ID)
	require.NoError(t, err)
	assert.Empty(t, johns)

	janes, err := notes.ListByUserID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Len(t, janes, 1)
}

func TestNoteUpdatePartial(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	u := mustCreateUser(t, users, "johndoe")
	n := mustCreateNote(t, notes, u.ID, "Getting Started", false)

	imp := true
	got, err := notes.Update(ctx, n.ID, dto.NotePatch{IsImportant: &imp})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsImportant)
	assert.Equal(t, "Getting Started", got.Title)
	assert.Equal(t, n.Content, got.Content)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, n.CreatedAt.Unix(), got.CreatedAt.Unix(), "createdAt is immutable")

	missing, err := notes.Update(ctx, 9999, dto.NotePatch{IsImportant: &imp})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteUpdateToUnknownUserFails(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	u := mustCreateUser(t, users, "johndoe")
	n := mustCreateNote(t, notes, u.ID, "Getting Started", false)

	ghost := uint(4242)
	_, err := notes.Update(ctx, n.ID, dto.NotePatch{UserID: &ghost})
	require.Error(t, err)
	assert.True(t, IsConstraint(err, ConstraintForeignKey))
}

func TestNoteDeleteByUserID(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	john := mustCreateUser(t, users, "johndoe")
	jane := mustCreateUser(t, users, "janedoe")
	mustCreateNote(t, notes, john.ID, "a", false)
	mustCreateNote(t, notes, john.ID, "b", false)
	mustCreateNote(t, notes, jane.ID, "c", false)

	count, err := notes.DeleteByUserID(ctx, john.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	janes, err := notes.ListByUserID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Len(t, janes, 1, "other users' notes stay put")

	none, err := notes.DeleteByUserID(ctx, john.ID)
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestNoteSearch(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	u := mustCreateUser(t, users, "johndoe")
	mustCreateNote(t, notes, u.ID, "Getting Started", true)
	mustCreateNote(t, notes, u.ID, "SQLite Setup", false)
	mustCreateNote(t, notes, u.ID, "Started Again", false)

	all, err := notes.Search(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.False(t, prev.CreatedAt.Before(cur.CreatedAt), "newest first")
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Greater(t, prev.ID, cur.ID)
		}
	}

	started, err := notes.Search(ctx, "Started", false)
	require.NoError(t, err)
	assert.Len(t, started, 2)

	importantStarted, err := notes.Search(ctx, "Started", true)
	require.NoError(t, err)
	require.Len(t, importantStarted, 1)
	assert.Equal(t, "Getting Started", importantStarted[0].Title)

	important, err := notes.Search(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, important, 1)

	nothing, err := notes.Search(ctx, "zzz", false)
	require.NoError(t, err)
	assert.Empty(t, nothing)
}

func TestNotePaginated(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	u := mustCreateUser(t, users, "johndoe")
	const total = 7
	for i := 0; i < total; i++ {
		mustCreateNote(t, notes, u.ID, "note", false)
	}

	seen := 0
	for page := 1; page <= 3; page++ {
		data, n, err := notes.Paginated(ctx, page, 3)
		require.NoError(t, err)
		assert.EqualValues(t, total, n)
		seen += len(data)
	}
	assert.Equal(t, total, seen, "pages together cover every note exactly once")

	past, n, err := notes.Paginated(ctx, 4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, total, n)
	assert.Empty(t, past)
}

func TestNoteListWithUsers(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	notes := NewNoteRepository(gdb)
	ctx := context.Background()

	john := mustCreateUser(t, users, "johndoe")
	jane := mustCreateUser(t, users, "janedoe")
	mustCreateNote(t, notes, john.ID, "a", false)
	mustCreateNote(t, notes, jane.ID, "b", false)

	rows, err := notes.ListWithUsers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, n := range rows {
		assert.Equal(t, n.UserID, n.User.ID, "owner loaded through the join")
		assert.NotEmpty(t, n.User.Username)
	}
}
