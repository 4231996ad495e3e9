// Package controller provides the HTTP handlers for pages, the login and
// signup flow, address lookups and the admin API.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/web/locale"
	"github.com/tutormatch/tutormatch/web/session"
)

// BaseController provides common functionality for all controllers, including authentication checks.
type BaseController struct{}

// checkLogin aborts API requests from clients that are not logged in.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.loginAgain"))
		c.Abort()
		return
	}
	c.Next()
}

// I18nWeb localizes a message for the current request.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	return locale.Web(c, name, params...)
}
