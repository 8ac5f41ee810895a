package middlewares

import (
	"net/http"

	"github.com/Kariqs/storefront/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// MsgSessionUnavailable is the response message when the session store fails.
const MsgSessionUnavailable = "Session store unavailable"

// LoadSession attaches the visitor's session to the request context.
func LoadSession(store sessions.Store, log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, err := store.Load(ctx.Request)
		if err != nil {
			log.Error("session load failed", zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": MsgSessionUnavailable})
			return
		}
		ctx.Set(sessionKey, session)
		ctx.Next()
	}
}

// CurrentSession returns the session set by LoadSession, or a fresh one when
// the middleware did not run.
func CurrentSession(ctx *gin.Context) *sessions.Session {
	if value, ok := ctx.Get(sessionKey); ok {
		if session, ok := value.(*sessions.Session); ok {
			return session
		}
	}
	session := sessions.New()
	ctx.Set(sessionKey, session)
	return session
}
