// Package repository handles all interactions with the database.
//
// Each read acquires its own connection from the pool for the duration
// of that single call and releases it on every exit path. Store calls
// run on a context detached from the caller's cancellation: a client
// disconnect does not abort an in-flight query. The only bound is the
// configurable query timeout.
//
// Every row is mapped once into a concrete domain type at this
// boundary; no loosely-typed row map crosses into the service layer.
package repository

import (
	"context"
	"time"

	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Teams   *TeamsRepository
	Players *PlayersRepository
	Games   *GamesRepository
	Plays   *PlaysRepository
}

// NewRepositories constructs the repository container from the shared
// application dependencies.
func NewRepositories(s *server.Server) *Repositories {
	queryTimeout := time.Duration(s.Config.Database.QueryTimeout) * time.Second
	return &Repositories{
		Teams:   &TeamsRepository{pool: s.DB.Pool, log: s.Logger, queryTimeout: queryTimeout},
		Players: &PlayersRepository{pool: s.DB.Pool, log: s.Logger, queryTimeout: queryTimeout},
		Games:   &GamesRepository{pool: s.DB.Pool, log: s.Logger, queryTimeout: queryTimeout},
		Plays:   &PlaysRepository{pool: s.DB.Pool, log: s.Logger, queryTimeout: queryTimeout},
	}
}

// storeContext derives the context used for a single store call.
// Caller cancellation is stripped so in-flight queries run to
// completion; the query timeout, when configured, still applies.
func storeContext(ctx context.Context, queryTimeout time.Duration) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if queryTimeout > 0 {
		return context.WithTimeout(ctx, queryTimeout)
	}
	return context.WithCancel(ctx)
}
