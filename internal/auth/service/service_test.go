package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/internal/auth/repository"
	"github.com/smallbiznis/staffhub/internal/clock"
	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fixture struct {
	svc    *Service
	userID uint64
	clock  *clock.Fake
	db     *gorm.DB
}

func newTestService(t *testing.T, ttl time.Duration) (*Service, uint64) {
	f := newFixture(t, ttl)
	return f.svc, f.userID
}

func newFixture(t *testing.T, ttl time.Duration) fixture {
	t.Helper()

	db := dbtest.Open(t, &accessdomain.User{}, &domain.APIToken{})
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)
	user := accessdomain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFake(time.Now())
	svc := New(Params{
		Log:   zaptest.NewLogger(t),
		Cfg:   config.Config{Auth: config.AuthConfig{TokenTTL: ttl}},
		Repo:  repository.New(db),
		GenID: node,
		Clock: clk,
	}).(*Service)
	return fixture{svc: svc, userID: user.ID, clock: clk, db: db}
}

func TestIssueTokenWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)

	_, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.IssueToken(context.Background(), domain.IssueTokenRequest{
		Email:    "nobody@example.com",
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIssueAndAuthenticate(t *testing.T) {
	svc, userID := newTestService(t, time.Hour)
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, domain.IssueTokenRequest{
		Email:    " Alice@Example.com ",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(issued.Token, tokenPrefix))
	require.NotNil(t, issued.ExpiresAt)

	principal, err := svc.Authenticate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, issued.ID, principal.TokenID)

	_, err = svc.Authenticate(ctx, issued.Token+"x")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	_, err = svc.Authenticate(ctx, "Bearer nonsense")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	user, err := svc.CurrentUser(ctx, principal.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, domain.IssueTokenRequest{Email: "alice@example.com", Password: "correct-password"})
	require.NoError(t, err)
	assert.Nil(t, issued.ExpiresAt)

	require.NoError(t, svc.RevokeToken(ctx, issued.ID))
	_, err = svc.Authenticate(ctx, issued.Token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	assert.ErrorIs(t, svc.RevokeToken(ctx, issued.ID), domain.ErrInvalidToken)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	f := newFixture(t, time.Minute)
	svc := f.svc
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, domain.IssueTokenRequest{Email: "alice@example.com", Password: "correct-password"})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Minute)
	_, err = svc.Authenticate(ctx, issued.Token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenOfDeletedUserIsRejected(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	issued, err := f.svc.IssueToken(ctx, domain.IssueTokenRequest{Email: "alice@example.com", Password: "correct-password"})
	require.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, issued.Token)
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&accessdomain.User{}, f.userID).Error)

	principal, err := f.svc.Authenticate(ctx, issued.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Nil(t, principal)
}
