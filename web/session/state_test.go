package session

import "testing"

func TestStateInvariant(t *testing.T) {
	var st State
	if st.IsAuthenticated() || st.User() != nil || st.Role() != RoleNone {
		t.Fatal("zero state must be logged out")
	}

	st.SetUser(&User{Id: 1, Username: "ana", Role: "tutor"})
	if !st.IsAuthenticated() || st.User() == nil {
		t.Fatal("SetUser did not authenticate")
	}
	if st.Role() != RoleTutor {
		t.Errorf("role = %v", st.Role())
	}

	st.Logout()
	if st.IsAuthenticated() || st.User() != nil || st.Role() != RoleNone {
		t.Fatal("Logout left state behind")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	var once, twice State
	once.SetUser(&User{Username: "a", Role: "learner"})
	twice.SetUser(&User{Username: "a", Role: "learner"})

	once.Logout()
	twice.Logout()
	twice.Logout()

	if once != twice {
		t.Errorf("logout twice = %+v, once = %+v", twice, once)
	}
}

func TestSetUserNilLogsOut(t *testing.T) {
	var st State
	st.SetUser(&User{Username: "a", Role: "admin"})
	st.SetUser(nil)
	if st.IsAuthenticated() {
		t.Error("SetUser(nil) kept the session authenticated")
	}
}

func TestSetUserCopies(t *testing.T) {
	u := &User{Username: "a", Role: "learner"}
	var st State
	st.SetUser(u)
	u.Role = "admin"
	if st.Role() != RoleLearner {
		t.Error("state aliased caller's user")
	}
	st.User().Role = "admin"
	if st.Role() != RoleLearner {
		t.Error("User() exposed internal record")
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"learner": RoleLearner,
		"Tutor":   RoleTutor,
		" admin ": RoleAdmin,
		"":        RoleNone,
		"moder":   RoleNone,
		"reader":  RoleNone,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", in, got, want)
		}
	}
	for _, r := range []Role{RoleLearner, RoleTutor, RoleAdmin} {
		if ParseRole(r.String()) != r {
			t.Errorf("%v does not round-trip", r)
		}
	}
}
