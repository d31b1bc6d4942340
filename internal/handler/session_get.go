package handler

import (
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
)

// SessionGet reports who the request is authenticated as
type SessionGet struct {
	Base
}

func (s *SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, via := Authenticator{Base: s.Base}.Auth(r)
	if session.Roles == nil {
		session.Roles = []string{}
	}

	writeJSON(w, http.StatusOK, SessionResponse{
		Ok:             true,
		SessionUserCtx: *session,
		SessionInfo: SessionInfo{
			AuthenticationHandlers: authenticationHandlers,
			Authenticated:          via,
		},
	})
}

type SessionResponse struct {
	Ok             bool          `json:"ok"`
	SessionUserCtx model.Session `json:"userCtx"`
	SessionInfo    SessionInfo   `json:"info"`
}

type SessionInfo struct {
	AuthenticationHandlers []string `json:"authentication_handlers"`
	Authenticated          string   `json:"authenticated,omitempty"`
}
