package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// ConstraintKind tells callers which storage rule rejected the write, so the
// HTTP layer can produce a field-specific message instead of a generic 500.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
)

// ConstraintError is a unique or referential-integrity rejection from the
// storage engine.
type ConstraintError struct {
	Kind     ConstraintKind
	Resource string // table the statement targeted
	Field    string // offending column when it can be determined
	Err      error
}

func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s constraint violated on %s: %v", e.Resource, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s constraint violated: %v", e.Resource, e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// StorageError is any other storage failure, wrapping the engine's error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func IsConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}

// mysql server error numbers for duplicate key and foreign key failures
const (
	mysqlErrDupEntry        = 1062
	mysqlErrNoReferencedRow = 1452
)

// translate maps a driver-level error to the typed errors above. Anything not
// recognized as a constraint violation becomes a StorageError.
func translate(op, resource string, err error) error {
	if err == nil {
		return nil
	}

	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &ConstraintError{Kind: ConstraintUnique, Resource: resource, Field: uniqueField(se.Error()), Err: err}
		case sqlite3.ErrConstraintForeignKey:
			return &ConstraintError{Kind: ConstraintForeignKey, Resource: resource, Field: "user_id", Err: err}
		}
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDupEntry:
			return &ConstraintError{Kind: ConstraintUnique, Resource: resource, Field: uniqueField(me.Message), Err: err}
		case mysqlErrNoReferencedRow:
			return &ConstraintError{Kind: ConstraintForeignKey, Resource: resource, Field: "user_id", Err: err}
		}
	}

	return &StorageError{Op: op, Err: err}
}

// uniqueField pulls the column name out of messages like
// "UNIQUE constraint failed: users.username".
func uniqueField(msg string) string {
	if i := strings.LastIndex(msg, "."); i >= 0 && i < len(msg)-1 {
		f := msg[i+1:]
		if j := strings.IndexAny(f, "' ("); j >= 0 {
			f = f[:j]
		}
		return strings.TrimSpace(f)
	}
	return ""
}
