package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
	"github.com/fireproject/scylla-migrate/internal/pgsource"
	"github.com/fireproject/scylla-migrate/internal/transform"
)

// scannedKind pairs a streamKind with a row-scan function. Scanning happens
// synchronously in the dispatch loop (a *sql.Rows cursor is not safe for
// concurrent use); the scanned value is then handed to a worker goroutine
// for the actual dependent-read-and-write work, which is where the
// concurrency pays off.
type scannedKind struct {
	streamKind
	scan    func(rows *sql.Rows) (any, error)
	process func(ctx context.Context, item any) error
}

func (m *Migrator) streams() []scannedKind {
	return []scannedKind{
		m.postStream(),
		m.reactionStream(),
		m.voteStream(),
		m.notificationStream(),
	}
}

func (m *Migrator) postStream() scannedKind {
	return scannedKind{
		streamKind: streamKind{
			kind: kindPost,
			count: func(ctx context.Context) (int64, error) {
				n, err := pgsource.CountPosts(ctx, m.pg, m.opts.NoteSince)
				if err != nil {
					return 0, err
				}
				return n - int64(m.opts.NoteSkip), nil
			},
			open: func(ctx context.Context) (*sql.Rows, error) {
				return pgsource.StreamPosts(ctx, m.pg, m.opts.NoteSince)
			},
		},
		scan: func(rows *sql.Rows) (any, error) {
			p, err := pgsource.ScanPostRow(rows)
			return p, err
		},
		process: func(ctx context.Context, item any) error {
			post := item.(model.Post)
			note, home, err := transform.Note(ctx, m.reader, post)
			if err != nil {
				return err
			}
			return transform.FanOutNote(ctx, m.dest, m.reader, post, note, home)
		},
	}
}

func (m *Migrator) reactionStream() scannedKind {
	return scannedKind{
		streamKind: streamKind{
			kind:  kindReaction,
			count: func(ctx context.Context) (int64, error) { return pgsource.CountReactions(ctx, m.pg) },
			open:  func(ctx context.Context) (*sql.Rows, error) { return pgsource.StreamReactions(ctx, m.pg) },
		},
		scan: func(rows *sql.Rows) (any, error) { return pgsource.ScanReactionRow(rows) },
		process: func(ctx context.Context, item any) error {
			r := item.(model.Reaction)
			return m.dest.InsertReaction(ctx, ptr(transform.Reaction(r)))
		},
	}
}

func (m *Migrator) voteStream() scannedKind {
	return scannedKind{
		streamKind: streamKind{
			kind:  kindVote,
			count: func(ctx context.Context) (int64, error) { return pgsource.CountVotes(ctx, m.pg) },
			open:  func(ctx context.Context) (*sql.Rows, error) { return pgsource.StreamVotes(ctx, m.pg) },
		},
		scan: func(rows *sql.Rows) (any, error) { return pgsource.ScanVoteRow(rows) },
		process: func(ctx context.Context, item any) error {
			v := item.(model.PollVote)
			row, err := transform.Vote(ctx, m.reader, m.dest, v)
			if err != nil {
				return err
			}
			if row == nil {
				return nil // voter not found; skip silently
			}
			return m.dest.InsertPollVote(ctx, row)
		},
	}
}

func (m *Migrator) notificationStream() scannedKind {
	return scannedKind{
		streamKind: streamKind{
			kind:  kindNotification,
			count: func(ctx context.Context) (int64, error) { return pgsource.CountNotifications(ctx, m.pg) },
			open:  func(ctx context.Context) (*sql.Rows, error) { return pgsource.StreamNotifications(ctx, m.pg) },
		},
		scan: func(rows *sql.Rows) (any, error) { return pgsource.ScanNotificationRow(rows) },
		process: func(ctx context.Context, item any) error {
			n := item.(model.Notification)
			row, err := transform.Notification(ctx, m.reader, n)
			if err != nil {
				return err
			}
			return m.dest.InsertNotification(ctx, row)
		},
	}
}

func ptr[T any](v T) *T { return &v }

// copy drains the four entity kinds, strictly in order; only within a kind
// does concurrency happen.
func (m *Migrator) copy(ctx context.Context) error {
	for _, sk := range m.streams() {
		if err := m.runKind(ctx, sk); err != nil {
			return fmt.Errorf("copy %s: %w", sk.kind.label(), err)
		}
	}
	return nil
}

// runKind is the bounded-concurrency pipeline kernel (C6): count, open,
// dispatch each row onto a semaphore-gated worker pool, report progress,
// isolate per-row failures. Mirrors the teacher's federation fan-out idiom
// (buffered channel as a semaphore plus a WaitGroup) rather than the
// source's periodic 1,000-task join — both bound outstanding work equally.
func (m *Migrator) runKind(ctx context.Context, sk scannedKind) error {
	total, err := sk.count(ctx)
	if err != nil {
		return apperr.Wrap(apperr.SourceQuery, err)
	}
	if total < 0 {
		total = 0
	}

	bar := m.sink.NewBar(sk.kind.label(), total)
	defer bar.Close()

	rows, err := sk.open(ctx)
	if err != nil {
		return err
	}
	defer rows.Close()

	sem := make(chan struct{}, m.threads())
	var wg sync.WaitGroup

	skipped := 0
	for rows.Next() {
		if sk.kind == kindPost && skipped < m.opts.NoteSkip {
			skipped++
			continue
		}

		item, err := sk.scan(rows)
		if err != nil {
			return apperr.Wrap(apperr.SourceQuery, err)
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(item any) {
			// No recover here: a panic in a worker brings down the whole
			// process (Go's default for an unrecovered goroutine panic;
			// the recover in cmd/scylla-migrate covers only the main
			// goroutine) instead of being swallowed as a per-row failure.
			defer func() {
				bar.Inc()
				<-sem
				wg.Done()
			}()
			if err := sk.process(ctx, item); err != nil {
				bar.Warn(fmt.Sprintf("%s: %v", sk.kind.label(), err))
			}
		}(item)
	}
	if err := rows.Err(); err != nil {
		wg.Wait()
		return apperr.Wrap(apperr.SourceQuery, err)
	}

	wg.Wait()
	return nil
}
