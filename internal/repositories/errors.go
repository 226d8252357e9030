package repositories

import (
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTokenNotFound        = errors.New("token not found")
	ErrTokenPairNotFound    = errors.New("token pair not found")
	ErrDeviceNotFound       = errors.New("device not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrFlatNotFound         = errors.New("flat not found")
	ErrRentNotFound         = errors.New("rent not found")

	// ErrDuplicate - нарушение ограничения уникальности
	ErrDuplicate = errors.New("duplicate key value")
)

const pgUniqueViolation = "23505"

// mapWriteError приводит ошибку записи к ErrDuplicate, если нарушена уникальность
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicate, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

// notFound заменяет gorm.ErrRecordNotFound на доменную ошибку
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

var naming = schema.NamingStrategy{}

// Change - старое и новое значение поля
type Change struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// Diff сравнивает две версии сущности и возвращает изменившиеся колонки.
// Связи (структуры, срезы структур) не сравниваются.
func Diff(before, after interface{}) map[string]Change {
	changes := make(map[string]Change)

	bv := reflect.Indirect(reflect.ValueOf(before))
	av := reflect.Indirect(reflect.ValueOf(after))
	if bv.Kind() != reflect.Struct || bv.Type() != av.Type() {
		return changes
	}

	t := bv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || isRelation(field.Type) {
			continue
		}
		oldVal := deref(bv.Field(i))
		newVal := deref(av.Field(i))
		if !reflect.DeepEqual(oldVal, newVal) {
			changes[naming.ColumnName("", field.Name)] = Change{Old: oldVal, New: newVal}
		}
	}
	return changes
}

func isRelation(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t.PkgPath() != "time"
}

func deref(v reflect.Value) interface{} {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		return v.Elem().Interface()
	}
	return v.Interface()
}
