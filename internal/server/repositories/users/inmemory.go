package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/models"
)

// InMemoryRepository keeps users in process memory. The email index is
// checked and updated under the same lock as the insert.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*models.User
	byEmail map[string]int64
	order   []int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[int64]*models.User),
		byEmail: make(map[string]int64),
	}
}

func (r *InMemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

// Insert assigns the next id unless user.ID is already set (seeding).
func (r *InMemoryRepository) Insert(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, common.ErrConflict
	}

	stored := clone(user)
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else {
		if _, taken := r.byID[stored.ID]; taken {
			return nil, common.ErrConflict
		}
		if stored.ID > r.nextID {
			r.nextID = stored.ID
		}
	}

	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	r.order = insertSorted(r.order, stored.ID)

	user.ID = stored.ID
	return user, nil
}

func (r *InMemoryRepository) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.order))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) || limit <= 0 {
		return []*models.User{}, total, nil
	}
	end := min(offset+limit, len(r.order))

	out := make([]*models.User, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out = append(out, clone(r.byID[id]))
	}
	return out, total, nil
}

func clone(u *models.User) *models.User {
	c := *u
	return &c
}

func insertSorted(ids []int64, id int64) []int64 {
	i := len(ids)
	for i > 0 && ids[i-1] > id {
		i--
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
