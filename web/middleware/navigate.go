package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web/entity"
	"github.com/tutormatch/tutormatch/web/guard"
	"github.com/tutormatch/tutormatch/web/locale"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/session"
)

// RouteKey holds the matched router.Route once the guard lets a request through.
const RouteKey = "route"

// Navigate runs the navigation guard for page requests. Only GET requests
// are page navigations; API paths and logout are left alone.
func Navigate(table *router.Table, basePath string) gin.HandlerFunc {
	prefix := strings.TrimSuffix(basePath, "/")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		if prefix != "" {
			switch {
			case path == prefix:
				path = "/"
			case strings.HasPrefix(path, prefix+"/"):
				path = strings.TrimPrefix(path, prefix)
			default:
				c.Next()
				return
			}
		}
		if strings.HasPrefix(path, "/api/") || path == "/logout" {
			c.Next()
			return
		}

		st := session.Load(c)
		outcome, route := guard.Resolve(table, path, st)
		logger.Debugf("guard %s %s as %q: %s", c.Request.Method, path, st.Role(), outcome)

		if outcome.IsProceed() {
			c.Set(RouteKey, *route)
			c.Next()
			return
		}

		target, ok := table.ByName(outcome.Redirect)
		if !ok {
			logger.Errorf("guard redirect target %q is not registered", outcome.Redirect)
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		location := prefix + target.Path

		if isAjax(c) {
			status, key := http.StatusOK, "pages.guard.redirected"
			switch target.Name {
			case router.NameLogin:
				status, key = http.StatusUnauthorized, "pages.guard.loginRequired"
			case router.NameNotFound:
				status, key = http.StatusNotFound, "pages.guard.notFound"
			}
			c.AbortWithStatusJSON(status, entity.Msg{
				Success: false,
				Msg:     locale.Web(c, key, "Route=="+target.Name),
				Obj:     entity.Redirect{Route: target.Name, Location: location},
			})
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, location)
		c.Abort()
	}
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
