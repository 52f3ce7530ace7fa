// Package pgsource provides the source-side PostgreSQL connection, ordered
// per-entity streaming cursors, and the dependent-read look-ups the row
// transformers need (replies, reposts, attached files, polls, edit history,
// voting users).
package pgsource

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/config"
)

// Open opens a connection pool against the source PostgreSQL database. Only
// the password is URL-encoded; the other fields are assumed safe, matching
// the source tool's connection-string construction.
//
// threads is the worker-pool size the caller will dispatch row-processing
// goroutines with. The pool is sized to threads+1, not threads: for every
// entity kind, runKind holds one *sql.Rows streaming cursor open for the
// whole duration of that kind's copy (it borrows one pooled connection and
// does not return it until the cursor is exhausted), while each of the up
// to `threads` concurrent workers separately needs a connection of its own
// for its dependent reads (PostByID, FilesByIDs, PollByPostID,
// EditHistoryByPostID, UserByID). Sizing the pool to exactly threads would
// let the streaming cursor starve every worker of a connection — at
// --threads 1 that deadlocks on the very first dispatched row.
func Open(cfg config.DBConfig, threads int) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User,
		url.QueryEscape(cfg.Pass),
		cfg.Host,
		cfg.Port,
		cfg.DB,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceConnection, fmt.Errorf("open source pool: %w", err))
	}

	if threads > 0 {
		maxOpenConns := threads + 1
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperr.Wrap(apperr.SourceConnection, fmt.Errorf("ping source pool: %w", err))
	}

	return db, nil
}
