package migrate

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fireproject/scylla-migrate/internal/pgsource"
	"github.com/fireproject/scylla-migrate/internal/progress"
	"github.com/fireproject/scylla-migrate/internal/scylladest"
)

// Options configures one Run: thread count, resume position, and whether to
// skip the interactive confirmation prompt.
type Options struct {
	Threads   int
	NoteSince string
	NoteSkip  int
	NoConfirm bool
}

func (o Options) threads() int {
	if o.Threads <= 0 {
		return 1
	}
	return o.Threads
}

// Migrator owns the lifecycle of one migration run: confirm, copy (C6),
// finalize (C7).
type Migrator struct {
	pg     *sql.DB
	reader *pgsource.Reader
	dest   *scylladest.Client
	sink   progress.Sink
	opts   Options

	confirm io.Reader
	out     io.Writer
}

// New builds a Migrator from already-open connections.
func New(pg *sql.DB, reader *pgsource.Reader, dest *scylladest.Client, sink progress.Sink, opts Options) *Migrator {
	return &Migrator{
		pg:      pg,
		reader:  reader,
		dest:    dest,
		sink:    sink,
		opts:    opts,
		confirm: os.Stdin,
		out:     os.Stderr,
	}
}

func (m *Migrator) threads() int { return m.opts.threads() }

// Run prints the destructive-operation warning, asks for confirmation
// unless NoConfirm is set, and — if confirmed — copies every row (C6) and
// then drops the migrated source tables (C7).
func (m *Migrator) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "this migration copies posts, reactions, poll votes, and notifications")
	fmt.Fprintln(m.out, "to the destination cluster, then permanently drops the source tables.")

	if !m.opts.NoConfirm {
		ok, err := m.confirmed()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.out, "aborted.")
			return nil
		}
	}

	if err := m.copy(ctx); err != nil {
		return err
	}
	return finalize(ctx, m.pg)
}

func (m *Migrator) confirmed() (bool, error) {
	fmt.Fprint(m.out, "type 'yes' to continue: ")
	scanner := bufio.NewScanner(m.confirm)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.TrimSpace(scanner.Text()) == "yes", nil
}
