package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web/service"
	"github.com/tutormatch/tutormatch/web/session"
)

// AccountController returns the logged-in user's identity.
type AccountController struct {
	BaseController

	userService service.UserService
}

func NewAccountController(g *gin.RouterGroup) *AccountController {
	a := &AccountController{}
	a.initRouter(g)
	return a
}

func (a *AccountController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/account")
	g.Use(a.checkLogin)

	g.GET("/me", a.me)
}

// me reloads the account so role changes made by an admin reach the
// session. A deleted account ends the session.
func (a *AccountController) me(c *gin.Context) {
	st := session.Load(c)
	user, err := a.userService.GetUserByPublicId(st.User().PublicId)
	if err != nil {
		logger.Warningf("session for %s no longer matches an account: %v", st.User().Username, err)
		st.Logout()
		_ = session.Store(c, st)
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.loginAgain"))
		return
	}
	st.SetUser(service.SessionUser(user))
	if err := session.Store(c, st); err != nil {
		logger.Warning("Unable to save session:", err)
	}
	jsonObj(c, map[string]any{
		"user": st.User(),
		"role": st.Role().String(),
	}, nil)
}
