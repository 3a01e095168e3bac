package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"content-scheduler/internal/handler/httperr"
	"content-scheduler/internal/pkg/config"
	"content-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var ErrInvalidTriggerSecret = errs.New("invalid trigger secret")

// TriggerAuthMiddleware gates the trigger endpoints behind a shared bearer
// secret. With no secret configured the gate is open, which is the intended
// local-development behavior.
type TriggerAuthMiddleware struct {
	secret string
}

func NewTriggerAuthMiddleware(cfg config.TriggerConfig) *TriggerAuthMiddleware {
	return &TriggerAuthMiddleware{secret: cfg.Secret}
}

func (m *TriggerAuthMiddleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			c.Next()
			return
		}

		token := extractBearerToken(c)
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrInvalidTriggerSecret, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
