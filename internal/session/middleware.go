package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName names the browser-session cookie carrying the session id.
const CookieName = "portfolio_session"

const (
	storeKey = "session.store"
	idKey    = "session.id"
)

// Middleware attaches the visitor's Store to the gin context, minting a
// session cookie on first visit. The cookie has no Max-Age so it ends
// with the browser session.
func Middleware(m Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(idKey, id)
		c.Set(storeKey, m.Open(id))
		c.Next()
	}
}

// From returns the Store attached by Middleware. Without the middleware
// it returns an empty throwaway store, so every gate stays locked.
func From(c *gin.Context) Store {
	if v, ok := c.Get(storeKey); ok {
		if s, ok := v.(Store); ok {
			return s
		}
	}
	return NewMemory()
}

// ID returns the session id attached by Middleware.
func ID(c *gin.Context) string {
	return c.GetString(idKey)
}
