package scylladest

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// Client binds the six compiled statements to a destination session. gocql
// prepares and caches each statement on first execution and reuses it by
// reference for every subsequent bind, so there is no separate Prepare step.
type Client struct {
	session *gocql.Session
}

// New wraps an already-dialed session.
func New(session *gocql.Session) *Client {
	return &Client{session: session}
}

func (c *Client) exec(ctx context.Context, stmt string, args ...any) error {
	if err := c.session.Query(stmt, args...).WithContext(ctx).Exec(); err != nil {
		return apperr.Wrap(apperr.DestinationQuery, fmt.Errorf("exec: %w", err))
	}
	return nil
}

func noteArgs(n *model.Note) []any {
	return []any{
		n.CreatedAtDate, n.CreatedAt, n.ID, n.Visibility, n.Content, n.Lang, n.Name, n.CW,
		n.LocalOnly, n.RenoteCount, n.RepliesCount, n.URI, n.URL, n.Score, n.Files,
		n.VisibleUserIDs, n.Mentions, n.MentionedRemoteUsers, n.Emojis, n.Tags,
		n.HasPoll, n.Poll, n.ThreadID, n.ChannelID, n.UserID, n.UserHost,
		n.ReplyID, n.ReplyUserID, n.ReplyUserHost, n.ReplyContent, n.ReplyCW, n.ReplyFiles,
		n.RenoteID, n.RenoteUserID, n.RenoteUserHost, n.RenoteContent, n.RenoteCW, n.RenoteFiles,
		n.Reactions, n.NoteEdit, n.UpdatedAt,
	}
}

// InsertNote writes the canonical note row.
func (c *Client) InsertNote(ctx context.Context, n *model.Note) error {
	return c.exec(ctx, insertNote, noteArgs(n)...)
}

// InsertHomeTimeline writes one home_timeline row for entry.FeedUserID.
func (c *Client) InsertHomeTimeline(ctx context.Context, entry *model.HomeTimelineEntry) error {
	args := append([]any{entry.FeedUserID}, noteArgs(&entry.Note)...)
	return c.exec(ctx, insertHomeTimeline, args...)
}

// InsertReaction writes a straight-copy reaction row.
func (c *Client) InsertReaction(ctx context.Context, r *model.DestReaction) error {
	return c.exec(ctx, insertReaction, r.ID, r.NoteID, r.UserID, r.Reaction, r.CreatedAt)
}

// InsertPollVote writes (or overwrites) the merged poll-vote row.
func (c *Client) InsertPollVote(ctx context.Context, v *model.DestPollVote) error {
	return c.exec(ctx, insertPollVote, v.NoteID, v.UserID, v.UserHost, v.Choice, v.CreatedAt)
}

// SelectPollVote fetches the existing vote row for (noteID, userID), or nil
// if none exists yet.
func (c *Client) SelectPollVote(ctx context.Context, noteID, userID string) (*model.DestPollVote, error) {
	var v model.DestPollVote
	err := c.session.Query(selectPollVote, noteID, userID).WithContext(ctx).
		Scan(&v.NoteID, &v.UserID, &v.UserHost, &v.Choice, &v.CreatedAt)
	if err == gocql.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.DestinationQuery, fmt.Errorf("select poll_vote: %w", err))
	}
	return &v, nil
}

// InsertNotification writes a notification row.
func (c *Client) InsertNotification(ctx context.Context, n *model.DestNotification) error {
	return c.exec(ctx, insertNotification,
		n.TargetID, n.CreatedAtDate, n.CreatedAt, n.ID, n.NotifierID, n.NotifierHost,
		n.Type, n.EntityID, n.Reaction, n.Choice, n.CustomBody, n.CustomHeader, n.CustomIcon,
	)
}

// Close releases the underlying session.
func (c *Client) Close() {
	c.session.Close()
}
