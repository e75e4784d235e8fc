package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Session groups the repos bound to one pooled connection.
// Callers must call Release exactly once when done, on every exit path.
type Session struct {
	Locations LocationRepo
	Prices    PriceRepo

	release func()
}

// NewSession builds a Session from already-constructed repos.
// release is called by Release; pass nil when there is nothing to give back.
func NewSession(locations LocationRepo, prices PriceRepo, release func()) *Session {
	return &Session{Locations: locations, Prices: prices, release: release}
}

// Release returns the underlying connection to the pool.
// Calling it more than once is a no-op.
func (s *Session) Release() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

// Acquirer hands out request-scoped Sessions.
// The service layer depends on this interface so it can be tested without a database.
type Acquirer interface {
	Acquire(ctx context.Context) (*Session, error)
}

// poolAcquirer is the pgxpool implementation of Acquirer.
type poolAcquirer struct {
	pool *pgxpool.Pool
}

// NewAcquirer constructs an Acquirer that checks one connection out of pool
// per Session.
func NewAcquirer(pool *pgxpool.Pool) Acquirer {
	return &poolAcquirer{pool: pool}
}

// Acquire blocks until a connection is available or ctx is done.
func (a *poolAcquirer) Acquire(ctx context.Context) (*Session, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Acquirer.Acquire: %w", err)
	}
	return NewSession(NewLocationRepo(conn), NewPriceRepo(conn), conn.Release), nil
}
