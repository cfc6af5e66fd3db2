package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/authorization"
	invoicedomain "github.com/smallbiznis/staffhub/internal/invoice/domain"
	"github.com/smallbiznis/staffhub/internal/ratelimit"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/validation"
	"gorm.io/gorm"
)

type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
	ErrRateLimited        = errors.New("rate_limited")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorResponse) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusUnprocessableEntity, errorResponse{
			Message: vErr.Message(),
			Errors:  vErr.Fields(),
		}
	}

	switch {
	case isUnauthorizedError(err):
		return http.StatusUnauthorized, errorResponse{Message: "Unauthenticated."}
	case errors.Is(err, ErrForbidden),
		errors.Is(err, authorization.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "This action is unauthorized."}
	case isNotFoundError(err):
		return http.StatusNotFound, errorResponse{Message: "Not found."}
	case errors.Is(err, ErrRateLimited),
		errors.Is(err, ratelimit.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Message: "Too Many Attempts."}
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Message: "Service Unavailable."}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "Server error."}
	}
}

// classifyErrorForLog feeds error_type and error_code into the request log.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if vErr := asValidationErrors(err); vErr != nil {
		code := "invalid_request"
		if fields := vErr.FieldNames(); len(fields) > 0 {
			code = "invalid_" + fields[0]
		}
		return "validation_error", code
	}

	switch {
	case isUnauthorizedError(err):
		return "unauthorized", err.Error()
	case errors.Is(err, ErrForbidden),
		errors.Is(err, authorization.ErrForbidden):
		return "forbidden", "forbidden"
	case isNotFoundError(err):
		return "not_found", "not_found"
	case errors.Is(err, ErrRateLimited),
		errors.Is(err, ratelimit.ErrTooManyAttempts):
		return "rate_limited", err.Error()
	case errors.Is(err, ErrServiceUnavailable):
		return "service_unavailable", "service_unavailable"
	default:
		return "internal_error", "internal_error"
	}
}

func asValidationErrors(err error) *validation.Errors {
	var vErr *validation.Errors
	if errors.As(err, &vErr) && vErr.HasErrors() {
		return vErr
	}
	return nil
}

func isUnauthorizedError(err error) bool {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken),
		errors.Is(err, authdomain.ErrTokenExpired),
		errors.Is(err, authdomain.ErrTokenRevoked),
		errors.Is(err, authdomain.ErrUnauthenticated),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, authorization.ErrInvalidActor):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, resource.ErrNotFound),
		errors.Is(err, invoicedomain.ErrInvoiceNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
