package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// legacyPaths maps pages of the earlier site layout to their current paths.
var legacyPaths = map[string]string{
	"home":         "",
	"registration": "signup",
	"choices":      "signup",
}

// RedirectMiddleware permanently redirects legacy page paths, keeping the query string.
func RedirectMiddleware(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimSuffix(c.Request.URL.Path, "/")
		for from, to := range legacyPaths {
			if path != basePath+from {
				continue
			}
			location := basePath + to
			if q := c.Request.URL.RawQuery; q != "" {
				location += "?" + q
			}
			c.Redirect(http.StatusMovedPermanently, location)
			c.Abort()
			return
		}

		c.Next()
	}
}
