package validation

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// validateExists implements exists=<table>: the value must be the id of a row
// in table.
func (v *Validator) validateExists(ctx context.Context, fl validator.FieldLevel) bool {
	table := strings.TrimSpace(fl.Param())
	if table == "" {
		return false
	}

	id, ok := fieldAsID(fl.Field())
	if !ok || id == 0 {
		return false
	}

	var count int64
	err := v.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).
		Limit(1).
		Count(&count).Error
	if err != nil {
		v.log.Warn("exists rule lookup failed", zap.String("table", table), zap.Error(err))
		return false
	}
	return count > 0
}

// validateUnique implements unique=<table>.<column>. The row named by
// WithIgnoreID is excluded.
func (v *Validator) validateUnique(ctx context.Context, fl validator.FieldLevel) bool {
	table, column, ok := strings.Cut(strings.TrimSpace(fl.Param()), ".")
	if !ok || table == "" || column == "" {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	value := field.String()

	stmt := v.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if ignoreID := ignoreIDFromContext(ctx); ignoreID != 0 {
		stmt = stmt.Where(clause.Neq{Column: clause.Column{Name: "id"}, Value: ignoreID})
	}

	var count int64
	if err := stmt.Limit(1).Count(&count).Error; err != nil {
		v.log.Warn("unique rule lookup failed", zap.String("table", table), zap.Error(err))
		return false
	}
	return count == 0
}

// validateNotSelf rejects a reference to the row named by WithIgnoreID. It
// always passes on create.
func validateNotSelf(ctx context.Context, fl validator.FieldLevel) bool {
	self := ignoreIDFromContext(ctx)
	if self == 0 {
		return true
	}
	id, ok := fieldAsID(fl.Field())
	return !ok || id != self
}

func fieldAsID(field reflect.Value) (uint64, bool) {
	switch field.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Int() < 0 {
			return 0, false
		}
		return uint64(field.Int()), true
	default:
		return 0, false
	}
}
