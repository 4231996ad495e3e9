package guard

import (
	"testing"

	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/session"
)

func loggedIn(role string) session.State {
	var st session.State
	st.SetUser(&session.User{Id: 1, Username: "u", Role: role})
	return st
}

func states() map[string]session.State {
	return map[string]session.State{
		"anonymous": {},
		"learner":   loggedIn("learner"),
		"tutor":     loggedIn("tutor"),
		"admin":     loggedIn("admin"),
		"unknown":   loggedIn("moder"),
	}
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	for _, r := range router.Default().Routes() {
		if !r.RequiresAuth {
			continue
		}
		r := r
		if got := Decide(&r, session.State{}); got != RedirectTo(router.NameLogin) {
			t.Errorf("%s while logged out = %s", r.Path, got)
		}
		if got := Decide(&r, loggedIn("learner")); !got.IsProceed() {
			t.Errorf("%s while logged in = %s", r.Path, got)
		}
	}
}

func TestAuthPagesForLoggedInUsers(t *testing.T) {
	want := map[string]Outcome{
		"learner": RedirectTo(router.NameFindTutor),
		"tutor":   RedirectTo(router.NameTutorApplication),
		"admin":   Proceed(),
		"moder":   RedirectTo(router.NameLanding),
	}
	table := router.Default()
	for _, name := range []string{router.NameLogin, router.NameSignup} {
		target, _ := table.ByName(name)
		for role, outcome := range want {
			if got := Decide(&target, loggedIn(role)); got != outcome {
				t.Errorf("%s as %s = %s, want %s", name, role, got, outcome)
			}
		}
		if got := Decide(&target, session.State{}); !got.IsProceed() {
			t.Errorf("%s while logged out = %s", name, got)
		}
	}
}

func TestUnknownRouteAlwaysNotFound(t *testing.T) {
	table := router.Default()
	for label, st := range states() {
		if got := Decide(nil, st); got != RedirectTo(router.NameNotFound) {
			t.Errorf("nil target as %s = %s", label, got)
		}
		if got, r := Resolve(table, "/bogus", st); got != RedirectTo(router.NameNotFound) || r != nil {
			t.Errorf("/bogus as %s = %s", label, got)
		}
		if got := Decide(&router.Route{Path: "/x"}, st); got != RedirectTo(router.NameNotFound) {
			t.Errorf("nameless target as %s = %s", label, got)
		}
	}
}

func TestOpenRoutesProceed(t *testing.T) {
	table := router.Default()
	for _, name := range []string{
		router.NameLanding, router.NameTutorDashboard, router.NameLearnerDashboard,
		router.NameNotFound, router.NameForbidden,
	} {
		target, _ := table.ByName(name)
		for label, st := range states() {
			if got := Decide(&target, st); !got.IsProceed() {
				t.Errorf("%s as %s = %s", name, label, got)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	table := router.Default()
	cases := []struct {
		name  string
		path  string
		state session.State
		want  Outcome
	}{
		{"A", "/findtutor", session.State{}, RedirectTo(router.NameLogin)},
		{"B", "/signup", loggedIn("tutor"), RedirectTo(router.NameTutorApplication)},
		{"C", "/login", loggedIn("admin"), Proceed()},
		{"D", "/bogus", loggedIn("learner"), RedirectTo(router.NameNotFound)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := Resolve(table, tc.path, tc.state)
			if got != tc.want {
				t.Errorf("%s = %s, want %s", tc.path, got, tc.want)
			}
		})
	}
}

func TestRedirectTargetsAreRegistered(t *testing.T) {
	table := router.Default()
	for _, name := range []string{
		router.NameLogin, router.NameFindTutor, router.NameTutorApplication,
		router.NameLanding, router.NameNotFound,
	} {
		if _, ok := table.ByName(name); !ok {
			t.Errorf("redirect target %s is not a registered route", name)
		}
	}
}
