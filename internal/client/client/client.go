package client

import (
	"context"
	"time"
)

// Session is what the server reports about the current session.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*Session, error)
	Ping(ctx context.Context) error
}
