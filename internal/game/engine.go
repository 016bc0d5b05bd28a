// internal/game/engine.go
//
// Engine orchestrates the four mini-games: it drives the AI gateway to
// produce content, holds the secret answer key in the session store, and
// grades submissions. Each game kind lives in its own file (mission.go,
// hoax.go, library.go, grammar.go); this file carries the shared pieces.
//
// Session lifecycle, all kinds:
//   - generate: AI call → verify/shape content → Store.Save → public half out.
//     Any AI failure aborts before Save; no session is created.
//   - validate/check: Store.Get → input checks → grade → Store.Take → result.
//     Take is the atomic consume; when two validates race, exactly one wins
//     and the loser sees ErrSessionNotFound.
package game

import (
	"context"

	"github.com/google/uuid"

	"github.com/literise/ai-service/internal/ai"
)

// Store is the session persistence the engine drives. Implemented by
// internal/store; kept here so the store can depend on Session without a
// package cycle. All methods return ErrSessionNotFound for missing ids.
type Store interface {
	// Save persists a new session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session without consuming it.
	Get(ctx context.Context, id string) (*Session, error)

	// Take retrieves and deletes a session in one atomic step.
	Take(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// Engine bundles the AI gateway and the session store.
type Engine struct {
	ai    ai.Gateway
	store Store
}

// New constructs an Engine.
func New(gw ai.Gateway, st Store) *Engine {
	return &Engine{ai: gw, store: st}
}

// lookup fetches a session and checks it belongs to the expected game kind.
// A session id of another kind is indistinguishable from a missing one.
func (e *Engine) lookup(ctx context.Context, id string, kind Kind) (*Session, error) {
	s, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Kind != kind {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// consume atomically takes the session, mapping a lost race to not-found.
func (e *Engine) consume(ctx context.Context, id string) error {
	if _, err := e.store.Take(ctx, id); err != nil {
		return ErrSessionNotFound
	}
	return nil
}

// newSessionID returns a fresh opaque session identifier.
func newSessionID() string { return uuid.NewString() }
