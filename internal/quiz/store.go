package quiz

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound marks lookups of quiz contents (or their questions) that do
// not exist.
var ErrNotFound = errors.New("not found")

type Store interface {
	PutQuizContent(ctx context.Context, c QuizContent) error
	GetQuizContent(ctx context.Context, id string) (QuizContent, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	contents map[string]QuizContent
}

// NewInMemoryStore backs tests and offline runs without a database.
func NewInMemoryStore() Store {
	return &memoryStore{contents: map[string]QuizContent{}}
}

func (m *memoryStore) PutQuizContent(_ context.Context, c QuizContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents[c.ID] = c
	return nil
}

func (m *memoryStore) GetQuizContent(_ context.Context, id string) (QuizContent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.contents[id]
	if !ok {
		return QuizContent{}, ErrNotFound
	}
	return c, nil
}
