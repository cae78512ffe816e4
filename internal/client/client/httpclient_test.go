package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/httpapi"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := services.NewAuthService(repomanager.NewInMemoryRepositoryManager(), auth.NewBcryptHasher(), logging.Discard())
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(svc, logging.Discard(), false), logging.Discard()))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(url+"/", 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestHTTPClient_SessionFlow(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, err := c.WhoAmI(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, c.Signup(ctx, "alice", "password1"))

	s, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, s.UserID)
	assert.False(t, s.CreatedAt.IsZero())

	require.NoError(t, c.Logout(ctx))

	_, err = c.WhoAmI(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.Logout(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession, "the jar dropped the cleared cookie")

	require.NoError(t, c.Login(ctx, "alice", "password1"))
	again, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.UserID, again.UserID)
}

func TestHTTPClient_Errors(t *testing.T) {
	srv := newServer(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	err := c.Signup(ctx, "al", "short")
	require.ErrorIs(t, err, common.ErrValidation)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Len(t, apiErr.Fields, 2)
	assert.Equal(t, "username", apiErr.Fields[0].Field)

	require.NoError(t, c.Signup(ctx, "alice", "password1"))
	assert.ErrorIs(t, c.Signup(ctx, "alice", "password1"), common.ErrUserAlreadyExists)
	assert.ErrorIs(t, c.Login(ctx, "alice", "nope-nope"), common.ErrInvalidCredentials)
}

func TestHTTPClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newClient(t, srv.URL).Login(context.Background(), "alice", "password1")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.EqualError(t, err, "Server error")
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newClient(t, url).Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "unexpected status 418", (&APIError{StatusCode: 418}).Error())
	assert.Equal(t, "a; b", (&APIError{Fields: []FieldError{{Message: "a"}, {Message: "b"}}}).Error())
	assert.NotErrorIs(t, &APIError{StatusCode: 400, Message: "x"}, ErrUnauthorized)
}
