package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/goydb/alldocs/pkg/model"
)

// SessionPost checks name and password of an admin and
// answers with a session cookie
type SessionPost struct {
	Base
}

func (s *SessionPost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	creds, err := readCredentials(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin := Authenticator{Base: s.Base}.Authenticate(creds.Name, creds.Password)
	if admin == nil {
		WriteError(w, http.StatusUnauthorized, "Name or password is incorrect.")
		return
	}

	session, err := s.SessionStore.New(r, sessionName)
	if session == nil {
		WriteErrorFor(w, err)
		return
	}
	admin.Store(session.Values)
	if err := session.Save(r, w); err != nil {
		WriteErrorFor(w, fmt.Errorf("save session: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, SessionPostResponse{Ok: true, Session: admin})
}

// readCredentials accepts JSON and form encoded logins
func readCredentials(r *http.Request) (SessionPostRequest, error) {
	var creds SessionPostRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&creds)
		return creds, err
	}

	err := r.ParseForm()
	if err != nil {
		return creds, err
	}
	creds.Name = r.PostForm.Get("name")
	creds.Password = r.PostForm.Get("password")
	return creds, nil
}

type SessionPostRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SessionPostResponse struct {
	Ok             bool `json:"ok"`
	*model.Session `json:"userCtx,omitempty"`
}
