package transform

import (
	"context"
	"fmt"
	"time"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Note resolves the reply/renote targets, their
// attached files, the related poll, and the edit history, then composes the
// canonical note row plus a home-timeline template whose FeedUserID is left
// unset for the caller to fill in per recipient.
func Note(ctx context.Context, reader Reader, post model.Post) (*model.Note, *model.HomeTimelineEntry, error) {
	var reply, renote *model.Post
	var err error

	if post.ReplyID.Valid {
		reply, err = reader.PostByID(ctx, post.ReplyID.String)
		if err != nil {
			return nil, nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("resolve reply %s: %w", post.ReplyID.String, err))
		}
	}
	if post.RenoteID.Valid {
		renote, err = reader.PostByID(ctx, post.RenoteID.String)
		if err != nil {
			return nil, nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("resolve renote %s: %w", post.RenoteID.String, err))
		}
	}

	ownFiles, err := lookupFiles(ctx, reader, post.FileIDs)
	if err != nil {
		return nil, nil, err
	}
	replyFiles, err := lookupFilesForPost(ctx, reader, reply)
	if err != nil {
		return nil, nil, err
	}
	renoteFiles, err := lookupFilesForPost(ctx, reader, renote)
	if err != nil {
		return nil, nil, err
	}

	poll, err := reader.PollByPostID(ctx, post.ID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("poll for %s: %w", post.ID, err))
	}

	edits, err := reader.EditHistoryByPostID(ctx, post.ID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("edit history for %s: %w", post.ID, err))
	}
	noteEdits := make([]model.NoteEditEmbed, 0, len(edits))
	for _, e := range edits {
		files, ferr := lookupFiles(ctx, reader, e.FileIDs)
		if ferr != nil {
			// Edit-level failure isolation: drop this edit, keep the row.
			continue
		}
		noteEdits = append(noteEdits, model.NoteEditEmbed{
			Content:   model.NullStringPtr(e.Text),
			CW:        model.NullStringPtr(e.CW),
			Files:     files,
			UpdatedAt: e.UpdatedAt,
		})
	}

	n := &model.Note{
		CreatedAtDate:        dateOf(post.CreatedAt),
		CreatedAt:            post.CreatedAt,
		ID:                   post.ID,
		Visibility:           post.Visibility,
		Content:              model.NullStringPtr(post.Text),
		Lang:                 model.NullStringPtr(post.Lang),
		Name:                 model.NullStringPtr(post.Name),
		CW:                   model.NullStringPtr(post.CW),
		LocalOnly:            post.LocalOnly,
		RenoteCount:          post.RenoteCount,
		RepliesCount:         post.RepliesCount,
		URI:                  model.NullStringPtr(post.URI),
		URL:                  model.NullStringPtr(post.URL),
		Score:                post.Score,
		Files:                ownFiles,
		VisibleUserIDs:       post.VisibleUserIDs,
		Mentions:             post.Mentions,
		MentionedRemoteUsers: post.MentionedRemoteUsers,
		Emojis:               post.Emojis,
		Tags:                 post.Tags,
		HasPoll:              poll != nil,
		Poll:                 embedPoll(poll),
		ThreadID:             model.NullStringPtr(post.ThreadID),
		ChannelID:            model.NullStringPtr(post.ChannelID),
		UserID:               post.UserID,
		UserHost:             post.HostOrLocal(),
		ReplyID:              model.NullStringPtr(post.ReplyID),
		ReplyUserID:          model.NullStringPtr(post.ReplyUserID),
		ReplyUserHost:        model.NullStringPtr(post.ReplyUserHost),
		ReplyFiles:           replyFiles,
		RenoteID:             model.NullStringPtr(post.RenoteID),
		RenoteUserID:         model.NullStringPtr(post.RenoteUserID),
		RenoteUserHost:       model.NullStringPtr(post.RenoteUserHost),
		RenoteFiles:          renoteFiles,
		Reactions:            ProjectReactions(post.Reactions),
		NoteEdit:             noteEdits,
		UpdatedAt:            model.NullTimePtr(post.UpdatedAt),
	}
	if reply != nil {
		n.ReplyContent = model.NullStringPtr(reply.Text)
		n.ReplyCW = model.NullStringPtr(reply.CW)
	}
	if renote != nil {
		n.RenoteContent = model.NullStringPtr(renote.Text)
		n.RenoteCW = model.NullStringPtr(renote.CW)
	}

	home := &model.HomeTimelineEntry{Note: *n}
	return n, home, nil
}

func lookupFiles(ctx context.Context, reader Reader, ids []string) ([]model.DriveFileEmbed, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	files, err := reader.FilesByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("resolve files: %w", err))
	}
	return resolveFiles(reader, files, ids), nil
}

func lookupFilesForPost(ctx context.Context, reader Reader, p *model.Post) ([]model.DriveFileEmbed, error) {
	if p == nil {
		return nil, nil
	}
	return lookupFiles(ctx, reader, p.FileIDs)
}
