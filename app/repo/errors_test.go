package repo

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateMySQLDuplicate(t *testing.T) {
	src := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'johndoe' for key 'users.username'"}
	err := translate("create user", "users", src)

	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ConstraintUnique, ce.Kind)
	assert.Equal(t, "users", ce.Resource)
	assert.Equal(t, "username", ce.Field)
	assert.True(t, errors.Is(err, src), "original cause stays reachable")
}

func TestTranslateMySQLForeignKey(t *testing.T) {
	src := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"}
	err := translate("create note", "notes", src)

	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ConstraintForeignKey, ce.Kind)
	assert.Equal(t, "user_id", ce.Field)
}

func TestTranslateUnknownBecomesStorageError(t *testing.T) {
	src := errors.New("disk I/O error")
	err := translate("list notes", "notes", src)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list notes", se.Op)
	assert.True(t, errors.Is(err, src))
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, translate("op", "users", nil))
}

func TestUniqueField(t *testing.T) {
	assert.Equal(t, "username", uniqueField("UNIQUE constraint failed: users.username"))
	assert.Equal(t, "username", uniqueField("Duplicate entry 'johndoe' for key 'users.username'"))
	assert.Equal(t, "", uniqueField("no separator here"))
}
