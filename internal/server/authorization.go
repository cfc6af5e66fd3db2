package server

import (
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/staffhub/internal/authorization"
)

// authorize checks the caller's groups grant action on object. It is a no-op
// when authentication is disabled.
func (s *Server) authorize(object string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.cfg.Auth.Enabled {
			c.Next()
			return
		}

		principal, ok := principalFromContext(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		actor := authorization.UserSubject(principal.UserID)
		if err := s.authzSvc.Authorize(c.Request.Context(), actor, object, action); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}
