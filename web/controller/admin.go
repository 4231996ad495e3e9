package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web/middleware"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/service"
	"github.com/tutormatch/tutormatch/web/session"
)

// AdminController exposes account and diagnostics endpoints to admins.
type AdminController struct {
	table *router.Table
}

func NewAdminController(g *gin.RouterGroup, table *router.Table) *AdminController {
	a := &AdminController{table: table}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin", middleware.RoleRequired(session.RoleAdmin))

	g.GET("/users", a.getUsers)
	g.POST("/users/:id/role", a.updateRole)
	g.POST("/users/:id/password", a.resetPassword)
	g.DELETE("/users/:id", a.deleteUser)
	g.GET("/routes", a.getRoutes)
	g.GET("/logs/:count", a.getLogs)
}

func userId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "pages.login.toasts.invalidFormData"))
		return 0, false
	}
	return id, true
}

func (a *AdminController) getUsers(c *gin.Context) {
	users, err := service.NewUserAdminService().ListUsers()
	jsonObj(c, users, err)
}

func (a *AdminController) updateRole(c *gin.Context) {
	id, ok := userId(c)
	if !ok {
		return
	}
	user, err := service.NewUserAdminService().UpdateUserRole(id, c.PostForm("role"))
	if err != nil {
		jsonMsg(c, "update role", err)
		return
	}
	jsonObj(c, user, nil)
}

func (a *AdminController) resetPassword(c *gin.Context) {
	id, ok := userId(c)
	if !ok {
		return
	}
	jsonMsg(c, "reset password", service.NewUserAdminService().ResetPassword(id, c.PostForm("password")))
}

func (a *AdminController) deleteUser(c *gin.Context) {
	id, ok := userId(c)
	if !ok {
		return
	}
	if u := session.Load(c).User(); u != nil && u.Id == id {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "pages.guard.forbidden"))
		return
	}
	if err := service.NewUserAdminService().DeleteUser(id); err != nil {
		jsonMsg(c, "delete user", err)
		return
	}
	logger.Infof("user %d deleted by %s", id, session.Load(c).User().Username)
	jsonMsg(c, I18nWeb(c, "success"), nil)
}

func (a *AdminController) getRoutes(c *gin.Context) {
	jsonObj(c, a.table.Routes(), nil)
}

func (a *AdminController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count <= 0 {
		count = 100
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, logger.GetLogs(count, level), nil)
}
