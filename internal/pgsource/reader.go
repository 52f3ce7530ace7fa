package pgsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// Reader executes the dependent look-ups a row transformer needs: the
// replied-to/reposted post, a post's attached files, its poll, its edit
// history, a user's host, and an author's local followers. Every look-up
// except LocalFollowerIDs is a prepared statement shared across worker
// goroutines — *sql.Stmt is safe for concurrent use; LocalFollowerIDs runs
// a plain query on the pool.
type Reader struct {
	db *sql.DB

	postByID     *sql.Stmt
	filesByIDs   *sql.Stmt
	pollByPostID *sql.Stmt
	editsByPost  *sql.Stmt
	userByID     *sql.Stmt
}

// NewReader prepares all dependent-read statements against db.
func NewReader(ctx context.Context, db *sql.DB) (*Reader, error) {
	r := &Reader{db: db}

	stmts := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.postByID, postColumns(`FROM note WHERE "id" = $1`)},
		{&r.filesByIDs, fileColumns(`FROM drive_file WHERE "id" = ANY($1)`)},
		{&r.pollByPostID, `SELECT "noteId", "expiresAt", "multiple", "choices" FROM poll WHERE "noteId" = $1`},
		{&r.editsByPost, `SELECT "noteId", "text", "cw", "fileIds", "updatedAt" FROM note_edit WHERE "noteId" = $1 ORDER BY "id" ASC`},
		{&r.userByID, `SELECT "id", "host" FROM "user" WHERE "id" = $1`},
	}
	for _, s := range stmts {
		stmt, err := db.PrepareContext(ctx, s.query)
		if err != nil {
			return nil, apperr.Wrap(apperr.SourceConnection, fmt.Errorf("prepare %q: %w", s.query, err))
		}
		*s.dst = stmt
	}
	return r, nil
}

func postColumns(suffix string) string {
	return `SELECT "id", "userId", "userHost", "visibility", "text", "cw", "name",
		"localOnly", "renoteCount", "repliesCount", "uri", "url", "score",
		"fileIds", "visibleUserIds", "mentions", "mentionedRemoteUsers",
		"emojis", "tags", "reactions", "lang", "threadId", "channelId",
		"replyId", "replyUserId", "replyUserHost",
		"renoteId", "renoteUserId", "renoteUserHost",
		"createdAt", "updatedAt" ` + suffix
}

func fileColumns(suffix string) string {
	return `SELECT "id", "type", "createdAt", "name", "comment", "blurhash",
		"url", "thumbnailUrl", "isSensitive", "isLink", "md5", "size", "properties" ` + suffix
}

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID, &p.UserID, &p.UserHost, &p.Visibility, &p.Text, &p.CW, &p.Name,
		&p.LocalOnly, &p.RenoteCount, &p.RepliesCount, &p.URI, &p.URL, &p.Score,
		pq.Array(&p.FileIDs), pq.Array(&p.VisibleUserIDs), pq.Array(&p.Mentions),
		&p.MentionedRemoteUsers, pq.Array(&p.Emojis), pq.Array(&p.Tags),
		&p.Reactions, &p.Lang, &p.ThreadID, &p.ChannelID,
		&p.ReplyID, &p.ReplyUserID, &p.ReplyUserHost,
		&p.RenoteID, &p.RenoteUserID, &p.RenoteUserHost,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanFile(row interface{ Scan(...any) error }) (model.DriveFile, error) {
	var f model.DriveFile
	err := row.Scan(
		&f.ID, &f.Type, &f.CreatedAt, &f.Name, &f.Comment, &f.Blurhash,
		&f.URL, &f.ThumbnailURL, &f.IsSensitive, &f.IsLink, &f.MD5, &f.Size, &f.Properties,
	)
	return f, err
}

// PostByID fetches a single post by id, used to resolve reply/renote
// targets. A missing row is reported as (nil, nil) — missing targets are
// tolerated per the fan-out contract.
func (r *Reader) PostByID(ctx context.Context, id string) (*model.Post, error) {
	p, err := scanPost(r.postByID.QueryRowContext(ctx, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("post by id %s: %w", id, err))
	}
	return &p, nil
}

// FilesByIDs resolves a set of drive_file ids in a single IN(...) lookup.
// An empty input returns an empty result without issuing a query.
func (r *Reader) FilesByIDs(ctx context.Context, ids []string) ([]model.DriveFile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.filesByIDs.QueryContext(ctx, pq.Array(ids))
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("files by ids: %w", err))
	}
	defer rows.Close()

	var files []model.DriveFile
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("scan file: %w", err))
		}
		files = append(files, f)
	}
	return files, apperr.Wrap(apperr.SourceQuery, rows.Err())
}

// PollByPostID fetches the poll related to a post, or nil if the post has no poll.
func (r *Reader) PollByPostID(ctx context.Context, postID string) (*model.Poll, error) {
	var p model.Poll
	err := r.pollByPostID.QueryRowContext(ctx, postID).Scan(&p.PostID, &p.ExpiresAt, &p.Multiple, pq.Array(&p.Choices))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("poll by post %s: %w", postID, err))
	}
	return &p, nil
}

// EditHistoryByPostID fetches all edits for a post, oldest first.
func (r *Reader) EditHistoryByPostID(ctx context.Context, postID string) ([]model.NoteEdit, error) {
	rows, err := r.editsByPost.QueryContext(ctx, postID)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("edit history for %s: %w", postID, err))
	}
	defer rows.Close()

	var edits []model.NoteEdit
	for rows.Next() {
		var e model.NoteEdit
		e.PostID = postID
		if err := rows.Scan(&e.PostID, &e.Text, &e.CW, pq.Array(&e.FileIDs), &e.UpdatedAt); err != nil {
			return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("scan edit: %w", err))
		}
		edits = append(edits, e)
	}
	return edits, apperr.Wrap(apperr.SourceQuery, rows.Err())
}

// UserByID fetches a user by id, used to resolve a poll voter's or
// notifier's host.
func (r *Reader) UserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.userByID.QueryRowContext(ctx, id).Scan(&u.ID, &u.Host)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("user by id %s: %w", id, err))
	}
	return &u, nil
}

// LocalFollowerIDs streams the ids of every local (null-host) follower of
// followeeID. The caller must call Close on the returned cursor.
func (r *Reader) LocalFollowerIDs(ctx context.Context, followeeID string) (*sql.Rows, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT "followerId" FROM following WHERE "followeeId" = $1 AND "followerHost" IS NULL`,
		followeeID,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("local followers of %s: %w", followeeID, err))
	}
	return rows, nil
}

// Close releases all prepared statements.
func (r *Reader) Close() error {
	var firstErr error
	for _, s := range []*sql.Stmt{r.postByID, r.filesByIDs, r.pollByPostID, r.editsByPost, r.userByID} {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
