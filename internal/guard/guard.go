// Package guard decides, for every navigation, whether the current session
// may reach a route. The decision is synchronous and trusts the locally
// held session; the backend independently re-validates authorization on
// every API call.
package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/entity"
	"room-booking-frontend/internal/session"
)

type Requirement int

const (
	None Requirement = iota
	Authenticated
	AdminOnly
)

type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToHome
)

// Decide maps (session, requirement) to an outcome:
//
//	requirement   | absent         | role=user      | role=admin
//	none          | allow          | allow          | allow
//	authenticated | redirect-login | allow          | allow
//	admin-only    | redirect-login | redirect-home  | allow
func Decide(sess *entity.Session, req Requirement) Decision {
	switch req {
	case Authenticated:
		if !sess.Complete() {
			return RedirectToLogin
		}
	case AdminOnly:
		if !sess.Complete() {
			return RedirectToLogin
		}
		if !sess.IsAdmin() {
			return RedirectToHome
		}
	}
	return Allow
}

// Require applies the decision on every navigation attempt.
func Require(req Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Decide(session.Current(c), req) {
		case RedirectToLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case RedirectToHome:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		}
	}
}

func RequireAuth() gin.HandlerFunc {
	return Require(Authenticated)
}

func RequireAdmin() gin.HandlerFunc {
	return Require(AdminOnly)
}

// SkipIfAuthenticated bounces signed-in users away from the login and
// register pages.
func SkipIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Complete() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		}
	}
}
