package handler

import (
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
)

const sessionName = "AuthSession"

var authenticationHandlers = []string{"cookie", "default"}

type Authenticator struct {
	Base
}

func (a Authenticator) Authenticate(username, password string) *model.Session {
	admin := a.Admins.Authenticate(username, password)
	if admin == nil {
		return nil
	}
	return admin.Session()
}

// Auth returns the session of the request and the handler that
// authenticated it. Without configured admins every request
// is an admin request.
func (a Authenticator) Auth(r *http.Request) (*model.Session, string) {
	if a.Admins.AdminParty() {
		return &model.Session{Roles: []string{model.RoleServerAdmin}}, "default"
	}

	if s := a.cookieSession(r); s != nil {
		return s, "cookie"
	}

	if username, password, ok := r.BasicAuth(); ok {
		if s := a.Authenticate(username, password); s != nil {
			return s, "default"
		}
	}

	return &model.Session{}, ""
}

// cookieSession rebuilds the session of a valid cookie from the
// configured admins. Roles stored in the cookie are ignored.
func (a Authenticator) cookieSession(r *http.Request) *model.Session {
	if a.SessionStore == nil {
		return nil
	}
	session, err := a.SessionStore.Get(r, sessionName)
	if err != nil || session.IsNew {
		return nil
	}

	var s model.Session
	s.Restore(session.Values)
	admin := a.Admins.Lookup(s.Name)
	if admin == nil {
		return nil
	}
	return admin.Session()
}

// RequireAdmin only passes requests of server admins to next
func (a Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := a.Auth(r)
		if !s.IsServerAdmin() {
			WriteError(w, http.StatusUnauthorized, "You are not a server admin.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
