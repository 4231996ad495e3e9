// Package entity defines the payloads returned by the web layer.
package entity

import (
	"github.com/tutormatch/tutormatch/web/session"
)

// Msg is the standard response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// Page is returned when navigation to a route proceeds. View is an opaque
// identifier resolved by the client's view registry.
type Page struct {
	Route string        `json:"route"`
	View  string        `json:"view"`
	User  *session.User `json:"user,omitempty"`
}

// Redirect tells XHR callers where the guard sent them.
type Redirect struct {
	Route    string `json:"route"`
	Location string `json:"location"`
}
