package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
)

type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (*accessdomain.User, error)
	FindUserByID(ctx context.Context, id uint64) (*accessdomain.User, error)
	InsertToken(ctx context.Context, token *APIToken) error
	FindTokenByHash(ctx context.Context, hash string) (*APIToken, error)
	TouchToken(ctx context.Context, id snowflake.ID, at time.Time) error
	RevokeToken(ctx context.Context, id snowflake.ID, at time.Time) error
}
