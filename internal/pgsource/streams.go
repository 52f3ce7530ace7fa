package pgsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// CountPosts returns the number of posts with id > since (if set), matching
// the same filter the post stream applies. noteSkip is not subtracted here;
// callers subtract it themselves so the progress bar total reflects rows
// actually dispatched.
func CountPosts(ctx context.Context, db *sql.DB, since string) (int64, error) {
	var n int64
	var err error
	if since != "" {
		err = db.QueryRowContext(ctx, `SELECT count(*) FROM note WHERE "id" > $1`, since).Scan(&n)
	} else {
		err = db.QueryRowContext(ctx, `SELECT count(*) FROM note`).Scan(&n)
	}
	return n, apperr.Wrap(apperr.SourceQuery, err)
}

// CountReactions returns the total number of note_reaction rows.
func CountReactions(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM note_reaction`).Scan(&n)
	return n, apperr.Wrap(apperr.SourceQuery, err)
}

// CountVotes returns the total number of poll_vote rows.
func CountVotes(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM poll_vote`).Scan(&n)
	return n, apperr.Wrap(apperr.SourceQuery, err)
}

// CountNotifications returns the total number of notification rows.
func CountNotifications(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM notification`).Scan(&n)
	return n, apperr.Wrap(apperr.SourceQuery, err)
}

// StreamPosts opens an ascending-id cursor over posts, applying the
// "id > since" filter server-side when since is non-empty.
func StreamPosts(ctx context.Context, db *sql.DB, since string) (*sql.Rows, error) {
	var rows *sql.Rows
	var err error
	if since != "" {
		rows, err = db.QueryContext(ctx, postColumns(`FROM note WHERE "id" > $1 ORDER BY "id" ASC`), since)
	} else {
		rows, err = db.QueryContext(ctx, postColumns(`FROM note ORDER BY "id" ASC`))
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("stream posts: %w", err))
	}
	return rows, nil
}

// ScanPostRow scans the current row of a StreamPosts cursor.
func ScanPostRow(rows *sql.Rows) (model.Post, error) {
	p, err := scanPost(rows)
	return p, apperr.Wrap(apperr.SourceQuery, err)
}

// StreamReactions opens an ascending-id cursor over note_reaction.
func StreamReactions(ctx context.Context, db *sql.DB) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT "id", "noteId", "userId", "reaction", "createdAt" FROM note_reaction ORDER BY "id" ASC`)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("stream reactions: %w", err))
	}
	return rows, nil
}

// ScanReactionRow scans the current row of a StreamReactions cursor.
func ScanReactionRow(rows *sql.Rows) (model.Reaction, error) {
	var r model.Reaction
	err := rows.Scan(&r.ID, &r.NoteID, &r.UserID, &r.Reaction, &r.CreatedAt)
	return r, apperr.Wrap(apperr.SourceQuery, err)
}

// StreamVotes opens an ascending-id cursor over poll_vote.
func StreamVotes(ctx context.Context, db *sql.DB) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT "id", "noteId", "userId", "choice", "createdAt" FROM poll_vote ORDER BY "id" ASC`)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("stream votes: %w", err))
	}
	return rows, nil
}

// ScanVoteRow scans the current row of a StreamVotes cursor.
func ScanVoteRow(rows *sql.Rows) (model.PollVote, error) {
	var v model.PollVote
	err := rows.Scan(&v.ID, &v.NoteID, &v.UserID, &v.Choice, &v.CreatedAt)
	return v, apperr.Wrap(apperr.SourceQuery, err)
}

// StreamNotifications opens an ascending-id cursor over notification.
func StreamNotifications(ctx context.Context, db *sql.DB) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, `SELECT "id", "notifieeId", "notifierId", "type",
		"noteId", "followRequestId", "userGroupInvitationId", "appAccessTokenId",
		"reaction", "choice", "customBody", "customHeader", "customIcon", "createdAt"
		FROM notification ORDER BY "id" ASC`)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("stream notifications: %w", err))
	}
	return rows, nil
}

// ScanNotificationRow scans the current row of a StreamNotifications cursor.
func ScanNotificationRow(rows *sql.Rows) (model.Notification, error) {
	var n model.Notification
	err := rows.Scan(
		&n.ID, &n.NotifieeID, &n.NotifierID, &n.Type,
		&n.NoteID, &n.FollowRequestID, &n.UserGroupInvitationID, &n.AppAccessTokenID,
		&n.Reaction, &n.Choice, &n.CustomBody, &n.CustomHeader, &n.CustomIcon, &n.CreatedAt,
	)
	return n, apperr.Wrap(apperr.SourceQuery, err)
}
