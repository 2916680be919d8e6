package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// Auth rejects requests without a valid bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.verify(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, ok := m.verify(c); ok {
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		}
		c.Next()
	}
}

func (m Middleware) verify(c *gin.Context) (scope.Scope, bool) {
	token, ok := scope.ExtractBearer(c.GetHeader("Authorization"))
	if !ok {
		return scope.Scope{}, false
	}

	payload, err := m.jwtManager.Verify(token)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.verify: %v", err)
		return scope.Scope{}, false
	}
	return scope.Scope{UserID: payload.UserID, Email: payload.Email}, true
}
