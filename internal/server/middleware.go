package server

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/authorization"
	obscontext "github.com/smallbiznis/staffhub/internal/observability/context"
	"github.com/smallbiznis/staffhub/internal/observability/logger"
	"go.uber.org/zap"
)

const (
	contextPrincipalKey = "principal"

	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
)

// CORS opens every /api route to any origin and answers preflights directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// TokenRequired authenticates the bearer token and stores the principal on
// the gin context.
func (s *Server) TokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		principal, err := s.authsvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := obscontext.WithActor(c.Request.Context(), "user", strconv.FormatUint(principal.UserID, 10))
		c.Request = c.Request.WithContext(ctx)
		c.Set(contextPrincipalKey, principal)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(strings.TrimSpace(header))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func principalFromContext(c *gin.Context) (*authdomain.Principal, bool) {
	value, ok := c.Get(contextPrincipalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*authdomain.Principal)
	return principal, ok && principal != nil
}

// RateLimit spends one token per request from the caller's bucket. Callers
// are keyed by user when authenticated, otherwise by client IP.
func (s *Server) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		endpoint := normalizeRateLimitEndpoint(c)

		result, err := s.limiter.Allow(ctx, rateLimitSubject(c))
		if err != nil {
			logger.FromContext(ctx).Warn("rate limit check failed", zap.Error(err))
			AbortWithError(c, ErrServiceUnavailable)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			denyRateLimit(ctx, c, endpoint, result.RetryAfter.Seconds(), s)
			return
		}

		s.obsMetrics.RecordRateLimitAllowed(ctx, endpoint)
		c.Next()
	}
}

func denyRateLimit(ctx context.Context, c *gin.Context, endpoint string, retryAfter float64, s *Server) {
	logger.FromContext(ctx).Warn("rate limit exceeded", zap.String("endpoint", endpoint))
	s.obsMetrics.RecordRateLimitDenied(ctx, endpoint, "request-rate")

	c.Header("Retry-After", strconv.Itoa(int(math.Max(1, math.Ceil(retryAfter)))))
	AbortWithError(c, ErrRateLimited)
}

func rateLimitSubject(c *gin.Context) string {
	if principal, ok := principalFromContext(c); ok {
		return authorization.UserSubject(principal.UserID)
	}
	return "ip:" + c.ClientIP()
}

func normalizeRateLimitEndpoint(c *gin.Context) string {
	endpoint := strings.TrimSpace(c.FullPath())
	if endpoint == "" {
		endpoint = strings.TrimSpace(c.Request.URL.Path)
	}
	if endpoint == "" {
		endpoint = "unknown"
	}
	return endpoint
}
