package api

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultStoreLimit bounds how many expansions a store keeps.
const DefaultStoreLimit = 1024

// ExpansionStore keeps recent expansions in memory, evicting the oldest
// once the limit is reached.
type ExpansionStore struct {
	mu    sync.Mutex
	limit int
	items map[string]Expansion
	order []string
}

func NewExpansionStore(limit int) *ExpansionStore {
	if limit <= 0 {
		limit = DefaultStoreLimit
	}
	return &ExpansionStore{
		limit: limit,
		items: make(map[string]Expansion),
	}
}

func (s *ExpansionStore) Save(exp Expansion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[exp.ID]; !ok {
		s.order = append(s.order, exp.ID)
	}
	s.items[exp.ID] = exp
	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.items, oldest)
	}
}

func (s *ExpansionStore) Get(id string) (Expansion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[id]
	return exp, ok
}

func (s *ExpansionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *ExpansionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func newExpansionID() string {
	return "exp_" + uuid.NewString()
}
