package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fireproject/scylla-migrate/internal/apperr"
)

type dropConstraint struct {
	table string
	fk    string
}

// dropConstraints and dropTables are the literal names and fixed order
// they must run in.
var dropConstraints = []dropConstraint{
	{"channel_note_pining", "FK_10b19ef67d297ea9de325cd4502"},
	{"clip_note", "FK_a012eaf5c87c65da1deb5fdbfa3"},
	{"muted_note", "FK_70ab9786313d78e4201d81cdb89"},
	{"note_favorite", "FK_0e00498f180193423c992bc4370"},
	{"note_unread", "FK_e637cba4dc4410218c4251260e4"},
	{"note_watching", "FK_03e7028ab8388a3f5e3ce2a8619"},
	{"promo_note", "FK_e263909ca4fe5d57f8d4230dd5c"},
	{"promo_read", "FK_a46a1a603ecee695d7db26da5f4"},
	{"user_note_pining", "FK_68881008f7c3588ad7ecae471cf"},
}

var dropTables = []string{
	"note_reaction", "note_edit", "poll", "poll_vote", "notification", "note",
}

// finalize executes the destructive post-copy schema mutation: drop the
// named foreign-key constraints, then drop the named tables, in order.
// Any failure here is fatal — it aborts the run.
func finalize(ctx context.Context, db *sql.DB) error {
	for _, dc := range dropConstraints {
		stmt := fmt.Sprintf(`ALTER TABLE %s DROP CONSTRAINT "%s"`, dc.table, dc.fk)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return apperr.Wrap(apperr.SourceQuery, fmt.Errorf("drop constraint %s on %s: %w", dc.fk, dc.table, err))
		}
	}
	for _, table := range dropTables {
		stmt := fmt.Sprintf(`DROP TABLE %s`, table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return apperr.Wrap(apperr.SourceQuery, fmt.Errorf("drop table %s: %w", table, err))
		}
	}
	return nil
}
