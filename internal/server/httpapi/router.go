// Package httpapi exposes the authentication service over HTTP with JSON
// bodies and a session cookie.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/gorilla/mux"
)

func NewRouter(h *Handler, l logging.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests(l))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Auth routes stay on the root router so a wrong method answers 405.
	r.HandleFunc(common.AuthRoutePrefix+"/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc(common.AuthRoutePrefix+"/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc(common.AuthRoutePrefix+"/logout", h.Logout).Methods(http.MethodPost)
	r.Handle(common.AuthRoutePrefix+"/session", RequireSession(h.auth)(http.HandlerFunc(h.Session))).Methods(http.MethodGet)

	return r
}
