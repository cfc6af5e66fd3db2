package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
)

type Service interface {
	IssueToken(ctx context.Context, req IssueTokenRequest) (*IssuedToken, error)
	Authenticate(ctx context.Context, rawToken string) (*Principal, error)
	RevokeToken(ctx context.Context, tokenID snowflake.ID) error
	CurrentUser(ctx context.Context, userID uint64) (*accessdomain.User, error)
}

type IssueTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,max=255"`
}

// IssuedToken carries the raw token. It is only ever returned once.
type IssuedToken struct {
	ID        snowflake.ID `json:"id"`
	Token     string       `json:"token"`
	ExpiresAt *time.Time   `json:"expires_at"`
}

// Principal is the authenticated caller behind a request.
type Principal struct {
	UserID  uint64
	TokenID snowflake.ID
}
