package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) FindUserByEmail(ctx context.Context, email string) (*accessdomain.User, error) {
	var user accessdomain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) FindUserByID(ctx context.Context, id uint64) (*accessdomain.User, error) {
	var user accessdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) InsertToken(ctx context.Context, token *domain.APIToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindTokenByHash only matches tokens whose user still exists.
func (r *repo) FindTokenByHash(ctx context.Context, hash string) (*domain.APIToken, error) {
	var token domain.APIToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Where("EXISTS (SELECT 1 FROM users WHERE users.id = api_tokens.user_id)").
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *repo) TouchToken(ctx context.Context, id snowflake.ID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.APIToken{}).
		Where("id = ?", id).
		UpdateColumn("last_used_at", at).Error
}

func (r *repo) RevokeToken(ctx context.Context, id snowflake.ID, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.APIToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Updates(map[string]any{"revoked_at": at, "updated_at": at})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrInvalidToken
	}
	return nil
}
