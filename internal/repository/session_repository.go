package repository

import (
	"container/list"
	"context"
	"sync"
	"time"

	"vocab-drills/internal/domain"
)

type sessionEntry struct {
	id       string
	session  *domain.Session
	lastSeen time.Time
	elem     *list.Element
}

// MemorySessionRepository keeps drill sessions in process memory.
// Sessions idle for longer than ttl are dropped, and once capacity is reached
// the least recently used session is evicted to make room.
type MemorySessionRepository struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]*sessionEntry
	lru      *list.List // front is most recently used
	now      func() time.Time
}

// NewMemorySessionRepository creates a repository. A ttl <= 0 disables expiry.
func NewMemorySessionRepository(ttl time.Duration, capacity int) *MemorySessionRepository {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemorySessionRepository{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]*sessionEntry),
		lru:      list.New(),
		now:      time.Now,
	}
}

func (r *MemorySessionRepository) Create(ctx context.Context, id string, s *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	if existing, ok := r.entries[id]; ok {
		r.removeLocked(existing)
	}
	for len(r.entries) >= r.capacity {
		r.removeLocked(r.lru.Back().Value.(*sessionEntry))
	}

	entry := &sessionEntry{id: id, session: s, lastSeen: now}
	entry.elem = r.lru.PushFront(entry)
	r.entries[id] = entry
	return nil
}

func (r *MemorySessionRepository) Update(ctx context.Context, id string, fn func(s *domain.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := r.lookupLocked(id)
	if err != nil {
		return err
	}
	entry.lastSeen = r.now()
	r.lru.MoveToFront(entry.elem)
	return fn(entry.session)
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := r.lookupLocked(id)
	if err != nil {
		return err
	}
	r.removeLocked(entry)
	return nil
}

// Len returns the number of live sessions.
func (r *MemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.now())
	return len(r.entries)
}

func (r *MemorySessionRepository) lookupLocked(id string) (*sessionEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if r.expired(entry, r.now()) {
		r.removeLocked(entry)
		return nil, domain.ErrSessionNotFound
	}
	return entry, nil
}

func (r *MemorySessionRepository) expired(entry *sessionEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastSeen) > r.ttl
}

// sweepLocked drops expired sessions from the cold end of the list.
func (r *MemorySessionRepository) sweepLocked(now time.Time) {
	for elem := r.lru.Back(); elem != nil; {
		entry := elem.Value.(*sessionEntry)
		if !r.expired(entry, now) {
			return
		}
		prev := elem.Prev()
		r.removeLocked(entry)
		elem = prev
	}
}

func (r *MemorySessionRepository) removeLocked(entry *sessionEntry) {
	r.lru.Remove(entry.elem)
	delete(r.entries, entry.id)
}
