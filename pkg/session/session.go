// Package session keeps server-side legend pager sessions.
//
// A session pins a data document and its layout options, and remembers the
// [layout.State] of the page currently on screen, so an HTTP client can page
// through a legend by id without echoing the state back on every request.
//
// Backends:
//   - [MemoryStore]: in-process map, for a single server
//   - [FileStore]: one JSON file per session, survives restarts
//   - [RedisStore]: shared across server instances, expiry delegated to Redis
//
// # Usage
//
//	sess := session.New(data, opts, l, st, session.DefaultTTL)
//	if err := store.Set(ctx, sess); err != nil {
//	    return err
//	}
//
//	sess, err := store.Get(ctx, id)
//	if errors.Is(err, errors.ErrCodeSessionNotFound) {
//	    // unknown or expired
//	}
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/pipeline"
)

// DefaultTTL is how long an untouched session lives.
const DefaultTTL = 30 * time.Minute

// Session is one legend being paged by a client.
type Session struct {
	ID      string           `json:"id"`
	Data    model.Data       `json:"data"`
	Options pipeline.Options `json:"options"`

	// Layout and State describe the page currently shown.
	Layout layout.Layout `json:"layout"`
	State  layout.State  `json:"state"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New creates a session with a random id for the page l.
func New(data model.Data, opts pipeline.Options, l layout.Layout, st layout.State, ttl time.Duration) *Session {
	now := time.Now()
	opts.State = nil
	opts.Logger = nil
	return &Session{
		ID:        uuid.NewString(),
		Data:      data,
		Options:   opts,
		Layout:    l,
		State:     st,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Touch moves the session to page l and extends its lifetime by ttl.
func (s *Session) Touch(l layout.Layout, st layout.State, ttl time.Duration) {
	s.Layout, s.State = l, st
	s.ExpiresAt = time.Now().Add(ttl)
}

// IsExpired reports whether the session has outlived its TTL at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store is the interface for session backends.
type Store interface {
	// Get returns the session with the given id. Unknown and expired
	// sessions fail with [errors.ErrCodeSessionNotFound].
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores or replaces a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions. It may be a no-op for backends
	// with native expiry.
	Cleanup(ctx context.Context) error

	Close() error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
}

// validID rejects ids that could escape a storage namespace.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
