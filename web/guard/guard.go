// Package guard decides, for each navigation, whether the client may see the
// target route or must be sent to another named route.
package guard

import (
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/session"
)

// Outcome is either Proceed or a redirect to a named route.
type Outcome struct {
	Redirect string
}

func Proceed() Outcome {
	return Outcome{}
}

func RedirectTo(name string) Outcome {
	return Outcome{Redirect: name}
}

func (o Outcome) IsProceed() bool {
	return o.Redirect == ""
}

func (o Outcome) String() string {
	if o.IsProceed() {
		return "proceed"
	}
	return "redirect:" + o.Redirect
}

// Decide evaluates the access rules in order, first match wins:
// unknown route, logged-in user on login/signup, protected route while
// logged out, otherwise proceed. A nil target is an unknown route.
func Decide(target *router.Route, st session.State) Outcome {
	if target == nil || target.Name == "" {
		return RedirectTo(router.NameNotFound)
	}

	if st.IsAuthenticated() && (target.Name == router.NameLogin || target.Name == router.NameSignup) {
		switch st.Role() {
		case session.RoleAdmin:
			return Proceed()
		case session.RoleLearner:
			return RedirectTo(router.NameFindTutor)
		case session.RoleTutor:
			return RedirectTo(router.NameTutorApplication)
		case session.RoleNone:
			return RedirectTo(router.NameLanding)
		}
		return RedirectTo(router.NameLanding)
	}

	if target.RequiresAuth && !st.IsAuthenticated() {
		return RedirectTo(router.NameLogin)
	}

	return Proceed()
}

// Resolve matches path against table and decides.
func Resolve(table *router.Table, path string, st session.State) (Outcome, *router.Route) {
	r, ok := table.Match(path)
	if !ok {
		return Decide(nil, st), nil
	}
	return Decide(&r, st), &r
}
