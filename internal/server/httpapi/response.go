package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

type messageResponse struct {
	Msg string `json:"msg"`
}

type fieldErrorResponse struct {
	Type     string `json:"type"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

type validationResponse struct {
	Errors []fieldErrorResponse `json:"errors"`
}

type sessionResponse struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Msg: msg})
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, "Server error", http.StatusInternalServerError)
}

// writeError maps service errors to status codes and bodies. Anything it
// does not recognise becomes a 500 without detail.
func writeError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		body := validationResponse{Errors: make([]fieldErrorResponse, 0, len(ve.Errors))}
		for _, fe := range ve.Errors {
			body.Errors = append(body.Errors, fieldErrorResponse{
				Type:     "field",
				Msg:      fe.Message,
				Path:     fe.Field,
				Location: "body",
			})
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, common.ErrUserAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, common.ErrNoSession):
		writeMessage(w, http.StatusBadRequest, "No session found")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
	default:
		writeServerError(w)
	}
}
