// Package router declares the application's route table: which path maps to
// which view, and which routes need a logged-in user.
package router

import (
	"errors"
	"fmt"
	"strings"
)

// Route names used by redirects.
const (
	NameLogin            = "login"
	NameSignup           = "signup"
	NameLanding          = "landingpage"
	NameTutorApplication = "tutor-application"
	NameFindTutor        = "findtutor"
	NameTutorDashboard   = "tutor-dashboard"
	NameLearnerDashboard = "learner-dashboard"
	NameNotFound         = "notfound"
	NameForbidden        = "forbidden"
)

var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrInvalidRoute  = errors.New("invalid route")
)

// Route describes one navigable page.
type Route struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	View         string `json:"view"`
	RequiresAuth bool   `json:"requiresAuth"`
}

// Table is an immutable set of routes indexed by path and by name.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable validates and indexes routes. Paths and names must be unique.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		if r.Name == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidRoute, r)
		}
		r.Path = cleanPath(r.Path)
		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		if _, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		t.byPath[r.Path] = len(t.routes)
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the route registered for path. A trailing slash is ignored.
func (t *Table) Match(path string) (Route, bool) {
	i, ok := t.byPath[cleanPath(path)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// ByName returns the route with the given name.
func (t *Table) ByName(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}

var defaultTable = MustNewTable(
	Route{Path: "/login", Name: NameLogin, View: "LoginView"},
	Route{Path: "/signup", Name: NameSignup, View: "SignupView"},
	Route{Path: "/", Name: NameLanding, View: "LandingPage"},
	Route{Path: "/tutorapplication", Name: NameTutorApplication, View: "TutorApplicationView", RequiresAuth: true},
	Route{Path: "/findtutor", Name: NameFindTutor, View: "FindTutorView", RequiresAuth: true},
	Route{Path: "/tutordashboard", Name: NameTutorDashboard, View: "TutorDashboardView"},
	Route{Path: "/learnerdashboard", Name: NameLearnerDashboard, View: "LearnerDashboardView"},
	Route{Path: "/notfound", Name: NameNotFound, View: "NotFoundView"},
	Route{Path: "/forbidden", Name: NameForbidden, View: "ForbiddenView"},
)

// Default returns the application's route table.
func Default() *Table {
	return defaultTable
}
