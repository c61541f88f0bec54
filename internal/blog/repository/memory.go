package repository

import (
	"context"
	"sync"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is a simple in-memory repository used for unit tests and local
// runs without MongoDB. Ids are ObjectIDs so listings look like Mongo's.
type MemoryRepo struct {
	mu    sync.RWMutex
	store []map[string]any
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(_ context.Context, doc blog.Candidate) (string, error) {
	id := primitive.NewObjectID()
	rec := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		rec[k] = v
	}
	rec["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = append(m.store, rec)
	return id.Hex(), nil
}

func (m *MemoryRepo) List(_ context.Context) ([]map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]map[string]any, 0, len(m.store))
	for _, rec := range m.store {
		cp := make(map[string]any, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

// Len reports how many documents are stored.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Ping always succeeds; the memory store has no remote side.
func (m *MemoryRepo) Ping(context.Context) error { return nil }
