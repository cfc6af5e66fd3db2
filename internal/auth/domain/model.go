// Package domain contains core types for bearer token authentication.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// APIToken is a hashed bearer credential issued to a user.
type APIToken struct {
	ID         snowflake.ID `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID     uint64       `gorm:"column:user_id;not null;index" json:"user_id"`
	Name       string       `gorm:"type:text;not null" json:"name"`
	Prefix     string       `gorm:"column:prefix;size:64;not null;uniqueIndex" json:"prefix"`
	TokenHash  string       `gorm:"column:token_hash;size:64;not null;uniqueIndex" json:"-"`
	LastUsedAt *time.Time   `gorm:"column:last_used_at" json:"last_used_at"`
	ExpiresAt  *time.Time   `gorm:"column:expires_at;index" json:"expires_at"`
	RevokedAt  *time.Time   `gorm:"column:revoked_at" json:"revoked_at"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (APIToken) TableName() string { return "api_tokens" }

// Usable reports whether the token may still authenticate at now.
func (t *APIToken) Usable(now time.Time) error {
	if t.RevokedAt != nil {
		return ErrTokenRevoked
	}
	if t.ExpiresAt != nil && !now.Before(*t.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
