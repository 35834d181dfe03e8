package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"steakhouse/storefront/internal/config"
	jwtpkg "steakhouse/storefront/pkg/jwt"
	"steakhouse/storefront/pkg/response"
)

const (
	ContextKeySessionID = "session_id"
	HeaderSessionToken  = "X-Session-Token"
)

// Session resolves the shopper's session from the X-Session-Token header or the
// session cookie. A missing or invalid token starts a fresh session and returns
// its token in both places.
func Session(jwtManager *jwtpkg.Manager, cfg config.SessionConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderSessionToken)
		if token == "" {
			token, _ = c.Cookie(cfg.CookieName)
		}

		if token != "" {
			if claims, err := jwtManager.Validate(token); err == nil {
				if id, err := claims.SessionID(); err == nil {
					c.Set(ContextKeySessionID, id.String())
					c.Next()
					return
				}
			} else {
				logger.Debug("discarding session token", zap.Error(err))
			}
		}

		id := uuid.New()
		token, err := jwtManager.GenerateSessionToken(id)
		if err != nil {
			logger.Error("failed to issue session token", zap.Error(err))
			response.InternalError(c, "failed to start session")
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", cfg.CookieSecure, true)
		c.Header(HeaderSessionToken, token)
		c.Set(ContextKeySessionID, id.String())
		c.Next()
	}
}

// SessionID returns the session resolved by Session, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
