package transform

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// NoteWriter is the destination-side surface FanOutNote writes through.
type NoteWriter interface {
	InsertNote(ctx context.Context, n *model.Note) error
	InsertHomeTimeline(ctx context.Context, entry *model.HomeTimelineEntry) error
}

// FollowerSource streams the local followers of a post's author.
type FollowerSource interface {
	LocalFollowerIDs(ctx context.Context, followeeID string) (*sql.Rows, error)
}

// FanOutNote writes the canonical note row, the author's own self-timeline
// entry when the author is local, and one
// home-timeline row per local follower. Destination errors on the
// per-follower fan-out writes are swallowed without being reported — one
// slow or failing follower must not stop the others. Source errors (the
// follower stream itself) propagate.
func FanOutNote(ctx context.Context, writer NoteWriter, followers FollowerSource, post model.Post, note *model.Note, home *model.HomeTimelineEntry) error {
	if err := writer.InsertNote(ctx, note); err != nil {
		return err
	}

	if post.IsLocal() {
		self := *home
		self.FeedUserID = post.UserID
		if err := writer.InsertHomeTimeline(ctx, &self); err != nil {
			return err
		}
	}

	rows, err := followers.LocalFollowerIDs(ctx, post.UserID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var followerID string
		if err := rows.Scan(&followerID); err != nil {
			return apperr.Wrap(apperr.SourceQuery, fmt.Errorf("scan follower id: %w", err))
		}
		entry := *home
		entry.FeedUserID = followerID
		_ = writer.InsertHomeTimeline(ctx, &entry)
	}
	return apperr.Wrap(apperr.SourceQuery, rows.Err())
}
