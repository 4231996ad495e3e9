package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web/entity"
	"github.com/tutormatch/tutormatch/web/locale"
	"github.com/tutormatch/tutormatch/web/service"
	"github.com/tutormatch/tutormatch/web/session"
)

// RoleRequired allows the request only for logged-in users holding one of roles.
// The role is read from the account, not the cookie, so demotions and
// deletions apply to sessions that are already open.
func RoleRequired(roles ...session.Role) gin.HandlerFunc {
	allowed := make(map[session.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	userService := service.UserService{}
	return func(c *gin.Context) {
		st := session.Load(c)
		if st.IsAuthenticated() {
			user, err := userService.GetUserByPublicId(st.User().PublicId)
			if err != nil {
				logger.Warningf("session for %s no longer matches an account: %v", st.User().Username, err)
				st.Logout()
			} else {
				st.SetUser(service.SessionUser(user))
			}
			if err := session.Store(c, st); err != nil {
				logger.Warning("Unable to save session:", err)
			}
		}
		if !st.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Msg: locale.Web(c, "pages.login.loginAgain"),
			})
			return
		}
		if !allowed[st.Role()] {
			logger.Warningf("%s (%s) denied %s", st.User().Username, st.Role(), c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, entity.Msg{
				Msg: locale.Web(c, "pages.guard.forbidden"),
			})
			return
		}
		c.Next()
	}
}
