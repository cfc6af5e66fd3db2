package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accessdomain "github.com/smallbiznis/staffhub/internal/access/domain"
	authdomain "github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/observability/logger"
	"github.com/smallbiznis/staffhub/internal/ratelimit"
	"go.uber.org/zap"
)

// IssueToken exchanges email and password for a bearer token. The raw token
// is only ever returned here.
func (s *Server) IssueToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req authdomain.IssueTokenRequest
	if err := bindJSON(c)(&req); err != nil {
		AbortWithError(c, err)
		return
	}
	if err := s.validator.Validate(ctx, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	email := accessdomain.NormalizeEmail(req.Email)
	if err := s.limiter.CheckLogin(ctx, email); err != nil {
		if !errors.Is(err, ratelimit.ErrTooManyAttempts) {
			logger.FromContext(ctx).Warn("login attempt check failed", zap.Error(err))
			err = ErrServiceUnavailable
		}
		AbortWithError(c, err)
		return
	}

	issued, err := s.authsvc.IssueToken(ctx, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.limiter.ResetLogin(ctx, email); err != nil {
		logger.FromContext(ctx).Warn("login attempt reset failed", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"data": issued})
}

func (s *Server) RevokeCurrentToken(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.authsvc.RevokeToken(c.Request.Context(), principal.TokenID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.authsvc.CurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}
