package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
)

const (
	sessionCookieName = "session_token"
	sessionHeaderName = "X-Session-Token"

	userContextKey    = "current_user"
	sessionContextKey = "current_session"
)

// SessionToken extracts the session token from the cookie, the session
// header, or an Authorization bearer value, in that order.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		return token
	}
	if token := c.GetHeader(sessionHeaderName); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessionAuth resolves the session token, slides its expiry, and loads the
// account into the request context. Requests without a live session are
// rejected with 401.
func SessionAuth(sessions *session.Service, users *user.Service, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "session expired or invalid"))
			return
		}

		usr, err := users.Get(c.Request.Context(), sess.UserID)
		if err != nil {
			logger.Warn().
				Err(err).
				Uint("user_id", sess.UserID).
				Msg("session references missing user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "account not found"))
			return
		}
		if !usr.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Err("FORBIDDEN", "account disabled"))
			return
		}

		c.Set(userContextKey, usr)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// OptionalSessionAuth loads the account when a live session is present but
// lets anonymous requests through. Handlers downstream decide whether a
// login is required.
func OptionalSessionAuth(sessions *session.Service, users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}
		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}
		if usr, err := users.Get(c.Request.Context(), sess.UserID); err == nil && usr.IsActive {
			c.Set(userContextKey, usr)
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// RequireAdmin ensures the authenticated account is an administrator.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := UserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
			return
		}
		if !usr.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Err("FORBIDDEN", "admin access required"))
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated account, if any.
func UserFromContext(c *gin.Context) (*user.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	usr, ok := val.(*user.User)
	return usr, ok
}

// SessionFromContext returns the resolved session, if any.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}
