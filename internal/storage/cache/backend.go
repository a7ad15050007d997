// Package cache содержит cache-aside декоратор над хранилищем заказов.
package cache

import (
	"context"
	"sync"
	"time"
)

// Backend хранит сериализованные выборки и счётчик поколений.
// Смена поколения делает недоступными все ранее сохранённые ключи.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Generation(ctx context.Context) (int64, error)
	Invalidate(ctx context.Context) (int64, error)
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryBackend — in-process реализация Backend.
type MemoryBackend struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	generation int64
	now        func() time.Time
}

// NewMemoryBackend создаёт пустой in-memory кэш.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !b.now().Before(e.expires) {
		delete(b.entries, key)
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	b.mu.Lock()
	defer b.mu.Unlock()

	e := memoryEntry{value: stored}
	if ttl > 0 {
		e.expires = b.now().Add(ttl)
	}
	b.entries[key] = e
	return nil
}

func (b *MemoryBackend) Generation(_ context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation, nil
}

// Invalidate увеличивает поколение и сразу выбрасывает старые записи.
func (b *MemoryBackend) Invalidate(_ context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.generation++
	b.entries = make(map[string]memoryEntry)
	return b.generation, nil
}

// Len возвращает количество записей, включая просроченные.
func (b *MemoryBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

var _ Backend = (*MemoryBackend)(nil)
