package registrations

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/zkauth/internal/common"
)

// InMemoryRepository keeps registrations in a map guarded by a mutex held
// for a single map operation. Records are stored and returned by value; the
// commitment values themselves are never mutated after registration.
type InMemoryRepository struct {
	mu   sync.RWMutex
	regs map[string]Registration
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{regs: make(map[string]Registration)}
}

func (r *InMemoryRepository) Put(ctx context.Context, reg *Registration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.regs[reg.Identity]
	r.regs[reg.Identity] = *reg
	return replaced, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, reg *Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regs[reg.Identity]; ok {
		return common.ErrorAlreadyExists
	}
	r.regs[reg.Identity] = *reg
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, identity string) (*Registration, error) {
	r.mu.RLock()
	reg, ok := r.regs[identity]
	r.mu.RUnlock()

	if !ok {
		return nil, common.ErrorNotFound
	}
	return &reg, nil
}
