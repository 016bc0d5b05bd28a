// internal/store/memory.go
//
// In-memory implementation of the game.Store interface: the sole source of
// truth for "is this game session still active".
//
// Characteristics:
//   - Sessions keyed by ID across a fixed number of shards (FNV-1a of the
//     key picks the shard), so sessions on different ids never contend.
//   - Per-shard mutex; Take (lookup + delete) runs under one lock so a
//     single-use session can never be consumed twice.
//   - Every entry carries an expiry; a janitor goroutine sweeps expired
//     entries, and reads treat expired entries as already gone. Abandoned
//     sessions therefore do not accumulate.
//   - State is lost when the process restarts. Single-instance deployments
//     only.

package store

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/literise/ai-service/internal/game"
)

const shardCount = 16

// entry wraps a session with its eviction deadline.
type entry struct {
	sess    *game.Session
	expires time.Time
}

// shard is one lock-guarded partition of the session map.
type shard struct {
	mu       sync.Mutex
	sessions map[string]entry
}

// Memory is a sharded, TTL-evicting game.Store.
type Memory struct {
	shards [shardCount]*shard
	ttl    time.Duration
	stop   chan struct{}
	once   sync.Once
}

// NewMemory constructs a Memory store whose sessions expire ttl after Save,
// and starts the background sweeper. Callers own Close.
func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{ttl: ttl, stop: make(chan struct{})}
	for i := range m.shards {
		m.shards[i] = &shard{sessions: make(map[string]entry)}
	}
	go m.sweep()
	return m
}

// Close stops the background sweeper. Safe to call more than once.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.stop) })
}

// Save stores the session under its ID with a fresh expiry.
func (m *Memory) Save(ctx context.Context, s *game.Session) error {
	sh := m.shard(s.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.sessions[s.ID] = entry{sess: s, expires: time.Now().Add(m.ttl)}
	return nil
}

// Get returns the session for id without consuming it.
func (m *Memory) Get(ctx context.Context, id string) (*game.Session, error) {
	sh := m.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	e, ok := sh.sessions[id]
	if !ok || time.Now().After(e.expires) {
		return nil, game.ErrSessionNotFound
	}
	return e.sess, nil
}

// Take returns the session for id and deletes it, atomically. Exactly one
// of any number of concurrent Take calls for the same id succeeds.
func (m *Memory) Take(ctx context.Context, id string) (*game.Session, error) {
	sh := m.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	e, ok := sh.sessions[id]
	if !ok || time.Now().After(e.expires) {
		return nil, game.ErrSessionNotFound
	}
	delete(sh.sessions, id)
	return e.sess, nil
}

// Delete removes the session for id. Missing ids are a no-op.
func (m *Memory) Delete(ctx context.Context, id string) error {
	sh := m.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.sessions, id)
	return nil
}

// Len reports the number of live (unexpired) sessions. Used by tests and
// the health endpoint.
func (m *Memory) Len() int {
	now := time.Now()
	n := 0
	for _, sh := range m.shards {
		sh.mu.Lock()
		for _, e := range sh.sessions {
			if now.Before(e.expires) {
				n++
			}
		}
		sh.mu.Unlock()
	}
	return n
}

// shard picks the partition for a key.
func (m *Memory) shard(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return m.shards[h.Sum32()%shardCount]
}

// sweep drops expired entries periodically until Close.
func (m *Memory) sweep() {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-t.C:
			for _, sh := range m.shards {
				sh.mu.Lock()
				for id, e := range sh.sessions {
					if now.After(e.expires) {
						delete(sh.sessions, id)
					}
				}
				sh.mu.Unlock()
			}
		}
	}
}
