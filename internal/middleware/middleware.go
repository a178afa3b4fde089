package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "propfirm-assistant/pkg/errors"
	"propfirm-assistant/pkg/log"
	"propfirm-assistant/pkg/response"
)

// HeaderRequestID is the response header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// HeaderAdminToken guards administrative routes.
const HeaderAdminToken = "X-Admin-Token"

// RequestID attaches a correlation ID to the request context so every log
// line for a request can be tied together. An incoming ID is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RateLimit enforces the per-client request budget keyed by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiters.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.Error(c, pkgErrors.NewHTTPError(429, "too many requests"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Admin requires the configured admin token. With no token configured the
// route stays open, which is only acceptable for local deployments.
func (m Middleware) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminToken == "" {
			c.Next()
			return
		}
		if c.GetHeader(HeaderAdminToken) != m.adminToken {
			response.Error(c, pkgErrors.NewHTTPError(403, "admin token required"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
