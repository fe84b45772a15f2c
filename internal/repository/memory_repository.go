package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/google/uuid"
)

// MemoryAccountRepository keeps accounts in a map. It backs STORE_DRIVER=memory
// and the transport tests.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryAccountRepository(seed ...models.Account) *MemoryAccountRepository {
	r := &MemoryAccountRepository{accounts: make(map[string]models.Account, len(seed))}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		r.accounts[a.ID] = a
	}
	return r
}

// FindAll returns accounts ordered by id, matching the PostgreSQL store.
func (r *MemoryAccountRepository) FindAll(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryAccountRepository) FindByID(_ context.Context, id string) (models.Account, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	return a, ok, nil
}

func (r *MemoryAccountRepository) Save(_ context.Context, account models.Account) (models.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = account
	return account, nil
}
