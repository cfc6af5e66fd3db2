package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	"github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/auth/password"
	"github.com/smallbiznis/staffhub/internal/clock"
	"github.com/smallbiznis/staffhub/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	tokenPrefix      = "shb_"
	tokenSecretBytes = 32
	defaultTokenName = "api"

	// last_used_at is refreshed at most this often per token
	touchInterval = time.Minute
)

// dummyHash keeps failed lookups as slow as a wrong password.
var dummyHash, _ = password.Hash("staffhub-dummy-password")

type Params struct {
	fx.In

	Log   *zap.Logger
	Cfg   config.Config
	Repo  domain.Repository
	GenID *snowflake.Node
	Clock clock.Clock `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	repo     domain.Repository
	genID    *snowflake.Node
	tokenTTL time.Duration
	clock    clock.Clock
}

func New(p Params) domain.Service {
	clk := p.Clock
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{
		log:      p.Log.Named("auth.service"),
		repo:     p.Repo,
		genID:    p.GenID,
		tokenTTL: p.Cfg.Auth.TokenTTL,
		clock:    clk,
	}
}

func (s *Service) IssueToken(ctx context.Context, req domain.IssueTokenRequest) (*domain.IssuedToken, error) {
	email := accessdomain.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			password.Verify(req.Password, dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	prefix, raw, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultTokenName
	}
	token := &domain.APIToken{
		ID:        s.genID.Generate(),
		UserID:    user.ID,
		Name:      name,
		Prefix:    prefix,
		TokenHash: domain.HashToken(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.tokenTTL > 0 {
		expires := now.Add(s.tokenTTL)
		token.ExpiresAt = &expires
	}

	if err := s.repo.InsertToken(ctx, token); err != nil {
		return nil, err
	}

	s.log.Info("api token issued", zap.Uint64("user_id", user.ID), zap.String("token_id", token.ID.String()))
	return &domain.IssuedToken{ID: token.ID, Token: raw, ExpiresAt: token.ExpiresAt}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Principal, error) {
	rawToken = strings.TrimSpace(rawToken)
	if !strings.HasPrefix(rawToken, tokenPrefix) {
		return nil, domain.ErrInvalidToken
	}

	token, err := s.repo.FindTokenByHash(ctx, domain.HashToken(rawToken))
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := token.Usable(now); err != nil {
		return nil, err
	}

	if token.LastUsedAt == nil || now.Sub(*token.LastUsedAt) >= touchInterval {
		if err := s.repo.TouchToken(ctx, token.ID, now); err != nil {
			s.log.Warn("failed to record token use", zap.String("token_id", token.ID.String()), zap.Error(err))
		}
	}

	return &domain.Principal{UserID: token.UserID, TokenID: token.ID}, nil
}

func (s *Service) RevokeToken(ctx context.Context, tokenID snowflake.ID) error {
	if tokenID == 0 {
		return domain.ErrInvalidToken
	}
	return s.repo.RevokeToken(ctx, tokenID, s.clock.Now())
}

func (s *Service) CurrentUser(ctx context.Context, userID uint64) (*accessdomain.User, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindUserByID(ctx, userID)
}

// generateToken returns the public prefix and the full raw token.
func generateToken() (string, string, error) {
	secret := make([]byte, tokenSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", "", err
	}
	prefix := strings.ToLower(ulid.Make().String())
	return prefix, tokenPrefix + prefix + "_" + hex.EncodeToString(secret), nil
}
