package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm translated", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "pgconn unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "ux_users_email"}, want: true},
		{name: "pgconn other", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "mysql", err: errors.New("Error 1062: Duplicate entry"), want: true},
		{name: "sqlite", err: errors.New("UNIQUE constraint failed: users.email"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDuplicateKeyErr(tc.err))
		})
	}
}

func TestDuplicateKeyConstraint(t *testing.T) {
	err := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_countries_name"})
	assert.Equal(t, "ux_countries_name", DuplicateKeyConstraint(err))
	assert.Equal(t, "", DuplicateKeyConstraint(errors.New("boom")))
}
