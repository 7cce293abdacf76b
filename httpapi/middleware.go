package httpapi

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/authzkit/auth"
	"github.com/kbukum/authzkit/errors"
	"github.com/kbukum/authzkit/logger"
)

const (
	ctxUserID    = "user_id"
	ctxRequestID = "request_id"

	headerUserID   = "X-User-Id"
	headerAdminKey = "X-Admin-Key"
)

// Recovery returns middleware that recovers from panics and logs the stack.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", map[string]interface{}{
					"error":  fmt.Sprintf("%v", r),
					"stack":  string(debug.Stack()),
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				})
				abortError(c, errors.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}

// RequestID injects a unique X-Request-Id header into every request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ctxRequestID, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RequestLogger logs every request with method, path, status, and latency.
// The health endpoint is skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": latency.Milliseconds(),
		}
		if id := c.GetString(ctxRequestID); id != "" {
			fields["request_id"] = id
		}

		switch {
		case status >= 500:
			log.Error("request completed", fields)
		case status >= 400:
			log.Warn("request completed", fields)
		default:
			log.Debug("request completed", fields)
		}
	}
}

// Identity resolves the calling user. A Bearer token wins when a token
// service is configured; otherwise the X-User-Id header is trusted.
// Requests with neither are rejected.
func Identity(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if tokens != nil && header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				abortError(c, errors.Unauthorized("invalid authorization header"))
				return
			}
			userID, err := tokens.Verify(parts[1])
			if err != nil {
				abortError(c, err)
				return
			}
			c.Set(ctxUserID, userID)
			c.Next()
			return
		}

		if userID := c.GetHeader(headerUserID); userID != "" {
			c.Set(ctxUserID, userID)
			c.Next()
			return
		}

		abortError(c, errors.Unauthorized("authentication required"))
	}
}

// AdminKey guards admin endpoints with a bcrypt-hashed key. An empty hash
// disables the admin surface.
func AdminKey(hasher *auth.KeyHasher, keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			abortError(c, errors.Forbidden("admin endpoints are disabled"))
			return
		}
		key := c.GetHeader(headerAdminKey)
		if key == "" {
			abortError(c, errors.Unauthorized("admin key required"))
			return
		}
		if err := hasher.Verify(key, keyHash); err != nil {
			abortError(c, err)
			return
		}
		c.Next()
	}
}
