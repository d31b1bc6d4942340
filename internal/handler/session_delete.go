package handler

import (
	"net/http"
)

// SessionDelete expires the session cookie
type SessionDelete struct {
	Base
}

func (s *SessionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, err := s.SessionStore.Get(r, sessionName)
	if err != nil && session == nil {
		WriteErrorFor(w, err)
		return
	}
	if session.IsNew {
		WriteError(w, http.StatusBadRequest, "can't logout if not logged in")
		return
	}

	session.Options.MaxAge = -1
	err = session.Save(r, w)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OkResponse{Ok: true})
}
