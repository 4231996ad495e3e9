package controller

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/config"
	"github.com/tutormatch/tutormatch/database/model"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web/entity"
	"github.com/tutormatch/tutormatch/web/guard"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/service"
	"github.com/tutormatch/tutormatch/web/session"
)

type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type SignupForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// IndexController handles login, signup and logout. The login and signup
// pages themselves are served by PageController.
type IndexController struct {
	BaseController

	table       *router.Table
	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup, table *router.Table) *IndexController {
	a := &IndexController{table: table}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.POST("/signup", a.signup)
	g.GET("/logout", a.logout)
	g.POST("/logout", a.logout)
}

func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.invalidFormData"))
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyUsername"))
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyPassword"))
		return
	}

	safeUser := template.HTMLEscapeString(form.Username)
	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		logger.Warningf("wrong username: \"%s\", IP: \"%s\"", safeUser, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.wrongUsernameOrPassword"))
		return
	}

	if err := a.startSession(c, user); err != nil {
		logger.Warning("Unable to save session: ", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "fail"))
		return
	}
	logger.Infof("%s logged in successfully, Ip Address: %s", safeUser, getRemoteIp(c))
	jsonMsgObj(c, I18nWeb(c, "pages.login.toasts.successLogin"), a.landing(c), nil)
}

func (a *IndexController) signup(c *gin.Context) {
	var form SignupForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.invalidFormData"))
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyUsername"))
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyPassword"))
		return
	}

	user, err := a.userService.Register(form.Username, form.Password, form.Role)
	switch {
	case errors.Is(err, service.ErrUserExists):
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.signup.toasts.userExists"))
		return
	case errors.Is(err, service.ErrInvalidRole):
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.signup.toasts.invalidRole"))
		return
	case err != nil:
		jsonMsg(c, I18nWeb(c, "pages.signup.toasts.failed"), err)
		return
	}

	if err := a.startSession(c, user); err != nil {
		logger.Warning("Unable to save session: ", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "fail"))
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.signup.toasts.success"), a.landing(c), nil)
}

func (a *IndexController) logout(c *gin.Context) {
	st := session.Load(c)
	if u := st.User(); u != nil {
		logger.Infof("%s logged out successfully", u.Username)
	}
	st.Logout()
	if err := session.Store(c, st); err != nil {
		logger.Warning("Unable to save session after logout:", err)
	}
	if err := session.Clear(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	login, _ := a.table.ByName(router.NameLogin)
	c.Redirect(http.StatusTemporaryRedirect, basePrefix(c)+login.Path)
}

func (a *IndexController) startSession(c *gin.Context, user *model.User) error {
	st := session.Load(c)
	st.SetUser(service.SessionUser(user))
	c.Set(stateKey, st)

	maxAge, err := config.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session max age:", err)
	} else if err := session.SetMaxAge(c, maxAge*60); err != nil {
		return err
	}
	return session.Store(c, st)
}

// landing is where a freshly logged-in client goes: the guard's answer for
// the login page, or the landing page when it may stay.
func (a *IndexController) landing(c *gin.Context) entity.Redirect {
	st, _ := c.Get(stateKey)
	state, _ := st.(session.State)
	login, _ := a.table.ByName(router.NameLogin)

	name := router.NameLanding
	if outcome := guard.Decide(&login, state); !outcome.IsProceed() {
		name = outcome.Redirect
	}
	target, _ := a.table.ByName(name)
	return entity.Redirect{Route: target.Name, Location: basePrefix(c) + target.Path}
}
