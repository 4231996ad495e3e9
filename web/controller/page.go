package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/web/entity"
	"github.com/tutormatch/tutormatch/web/middleware"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/session"
)

// PageController answers navigations the guard let through with the view
// registered for the route.
type PageController struct {
	table *router.Table
}

func NewPageController(g *gin.RouterGroup, table *router.Table) *PageController {
	a := &PageController{table: table}
	a.initRouter(g)
	return a
}

func (a *PageController) initRouter(g *gin.RouterGroup) {
	for _, r := range a.table.Routes() {
		g.GET(r.Path, a.page)
	}
}

func (a *PageController) page(c *gin.Context) {
	var route router.Route
	if v, ok := c.Get(middleware.RouteKey); ok {
		route, _ = v.(router.Route)
	} else {
		route, _ = a.table.Match(strings.TrimPrefix(c.FullPath(), basePrefix(c)))
	}
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Obj: entity.Page{
			Route: route.Name,
			View:  route.View,
			User:  session.Load(c).User(),
		},
	})
}

// notFound handles requests that match no registered handler.
func (a *PageController) notFound(c *gin.Context) {
	route, _ := a.table.ByName(router.NameNotFound)
	c.JSON(http.StatusNotFound, entity.Msg{
		Success: false,
		Msg:     I18nWeb(c, "pages.guard.notFound"),
		Obj:     entity.Page{Route: route.Name, View: route.View},
	})
}

// NoRoute returns the handler for unmatched requests.
func (a *PageController) NoRoute() gin.HandlerFunc {
	return a.notFound
}
