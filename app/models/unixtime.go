package models

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("epoch", epochSerializer{})
}

// epochSerializer persists a time.Time as whole epoch seconds so the column
// stays a plain INTEGER across drivers. Sub-second precision is dropped on
// write.
type epochSerializer struct{}

func (epochSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	var t time.Time
	switch v := dbValue.(type) {
	case nil:
	case int64:
		t = time.Unix(v, 0)
	case []byte:
		secs, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("epoch: parse %q: %w", v, err)
		}
		t = time.Unix(secs, 0)
	case string:
		secs, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("epoch: parse %q: %w", v, err)
		}
		t = time.Unix(secs, 0)
	case time.Time:
		t = v
	default:
		return fmt.Errorf("epoch: unsupported column value %#v", dbValue)
	}
	field.ReflectValueOf(ctx, dst).Set(reflect.ValueOf(t))
	return nil
}

func (epochSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	t, ok := fieldValue.(time.Time)
	if !ok {
		return nil, fmt.Errorf("epoch: unsupported field value %#v", fieldValue)
	}
	return t.Unix(), nil
}
