package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/woundcare-api/pkg/auth"
	"github.com/jwalitptl/woundcare-api/pkg/httputil"
)

const (
	HeaderSessionToken = "X-Session-Token"
	ContextSessionID   = "session_id"
)

type SessionConfig struct {
	CookieName string
	MaxAge     int // seconds
	Secure     bool
}

// Session resolves the browser session from the session cookie or a bearer
// token. A missing or invalid token starts a new session. The current token is
// always echoed in the X-Session-Token header and the cookie.
func Session(jwtSvc auth.JWTService, config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(config.CookieName)
		}

		id, err := uuid.Nil, auth.ErrInvalidToken
		if token != "" {
			id, err = jwtSvc.ValidateSessionToken(token)
		}
		if err != nil {
			id = uuid.New()
			token, err = jwtSvc.GenerateSessionToken(id)
			if err != nil {
				log.Error().Err(err).Msg("failed to issue session token")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httputil.NewErrorResponse("Internal server error", nil))
				return
			}
		}

		c.Set(ContextSessionID, id.String())
		c.Header(HeaderSessionToken, token)
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(config.CookieName, token, config.MaxAge, "/", "", config.Secure, true)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionID returns the session resolved by the Session middleware.
func SessionID(c *gin.Context) uuid.UUID {
	id, err := uuid.Parse(c.GetString(ContextSessionID))
	if err != nil {
		return uuid.Nil
	}
	return id
}
