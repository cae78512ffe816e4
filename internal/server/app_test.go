package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewApp_RejectsBadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cfg.LogLevel = "loud"
	_, err := NewApp(context.Background(), cfg)
	assert.Error(t, err)

	cfg.LogLevel = "info"
	cfg.DatabaseDSN = "mysql://localhost/auth"
	_, err = NewApp(context.Background(), cfg)
	assert.Error(t, err)
}

func TestApp_RunServesUntilCancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LogLevel = "error"
	cfg.EndpointAddrHTTP = freeAddr(t)
	cfg.EndpointAddrGRPC = freeAddr(t)
	cfg.ShutdownTimeout = time.Second

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Post("http://"+cfg.EndpointAddrHTTP+"/api/auth/signup", "application/json",
			strings.NewReader(`{"username":"alice","password":"password1"}`))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}
