// Package transform implements the pure row-to-row mappings from source
// entities to destination rows: the dependent look-ups a post needs to
// denormalize its reply/renote/poll/edit-history, vote merging, and
// notification entity-id precedence.
package transform

import (
	"context"

	"github.com/fireproject/scylla-migrate/internal/model"
)

// Reader is the subset of pgsource.Reader a transformer needs. Declaring it
// here (rather than depending on the concrete type) lets tests substitute a
// fake without touching a real Postgres connection.
type Reader interface {
	PostByID(ctx context.Context, id string) (*model.Post, error)
	FilesByIDs(ctx context.Context, ids []string) ([]model.DriveFile, error)
	PollByPostID(ctx context.Context, postID string) (*model.Poll, error)
	EditHistoryByPostID(ctx context.Context, postID string) ([]model.NoteEdit, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}
