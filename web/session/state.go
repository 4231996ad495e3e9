package session

import "strings"

// Role is the closed set of account roles the navigation guard branches on.
type Role int

const (
	RoleNone Role = iota
	RoleLearner
	RoleTutor
	RoleAdmin
)

// ParseRole maps a stored role tag to a Role. Unknown tags yield RoleNone.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "learner":
		return RoleLearner
	case "tutor":
		return RoleTutor
	case "admin":
		return RoleAdmin
	}
	return RoleNone
}

func (r Role) String() string {
	switch r {
	case RoleLearner:
		return "learner"
	case RoleTutor:
		return "tutor"
	case RoleAdmin:
		return "admin"
	}
	return ""
}

// User is the identity record kept in the session.
type User struct {
	Id       int    `json:"id"`
	PublicId string `json:"publicId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// State is the current client's authentication status. The zero value is
// logged out. user presence and the authenticated flag only change together.
type State struct {
	user *User
}

// SetUser records a successful login. A nil user logs out.
func (s *State) SetUser(u *User) {
	if u == nil {
		s.Logout()
		return
	}
	cp := *u
	s.user = &cp
}

// Logout clears the user. Calling it when logged out is a no-op.
func (s *State) Logout() {
	s.user = nil
}

// User returns a copy of the current identity, or nil when logged out.
func (s State) User() *User {
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s State) IsAuthenticated() bool {
	return s.user != nil
}

// Role is derived from the user; RoleNone when logged out.
func (s State) Role() Role {
	if s.user == nil {
		return RoleNone
	}
	return ParseRole(s.user.Role)
}
