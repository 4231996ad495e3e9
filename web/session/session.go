// Package session holds the per-client authentication state and persists it
// in the gin cookie session.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/tutormatch/tutormatch/logger"
)

const (
	loginUser  = "LOGIN_USER"
	CookieName = "tutormatch"
)

// Load returns a snapshot of the session state for this request.
func Load(c *gin.Context) State {
	var st State
	s := sessions.Default(c)
	raw, ok := s.Get(loginUser).([]byte)
	if !ok || len(raw) == 0 {
		return st
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		logger.Warning("discarding unreadable session user:", err)
		return st
	}
	st.SetUser(&u)
	return st
}

// Store writes the state back to the cookie session.
func Store(c *gin.Context, st State) error {
	s := sessions.Default(c)
	u := st.User()
	if u == nil {
		s.Delete(loginUser)
		return s.Save()
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	s.Set(loginUser, raw)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func IsLogin(c *gin.Context) bool {
	return Load(c).IsAuthenticated()
}

// Clear drops every session value and expires the cookie.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
