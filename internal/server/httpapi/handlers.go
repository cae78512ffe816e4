package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// maxBodyBytes caps signup and login payloads.
const maxBodyBytes = 1 << 20

// Authenticator is the part of services.AuthService the handlers use.
type Authenticator interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

type Handler struct {
	auth         Authenticator
	logger       logging.Logger
	cookieSecure bool
}

func NewHandler(a Authenticator, l logging.Logger, cookieSecure bool) *Handler {
	return &Handler{auth: a, logger: l, cookieSecure: cookieSecure}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// decodeCredentials reads the JSON body. A body that is not JSON is treated
// as carrying no fields, so validation reports what is missing. A field of
// the wrong type is left empty and the other fields are kept.
func decodeCredentials(w http.ResponseWriter, r *http.Request) credentialsRequest {
	var req credentialsRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(&req)

	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.As(err, &typeErr):
		return req
	default:
		return credentialsRequest{}
	}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	req := decodeCredentials(w, r)

	token, err := h.auth.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req := decodeCredentials(w, r)

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeMessage(w, http.StatusOK, "Login successful")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), sessionToken(r)); err != nil {
		writeError(w, err)
		return
	}

	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logout successful")
}

// Session describes the session the request was authenticated with. It
// must be mounted behind RequireSession.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
