package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. The username uniqueness
// check and the insert happen under one lock, like a UNIQUE constraint.
type MemoryRepository struct {
	mu         sync.RWMutex
	byUserName map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUserName: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUserName[user.UserName]; ok {
		return nil, fmt.Errorf("%w: %s", common.ErrDuplicateUsername, user.UserName)
	}
	r.byUserName[user.UserName] = *user

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUserName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
