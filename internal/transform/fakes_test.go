package transform

import (
	"context"
	"database/sql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/fireproject/scylla-migrate/internal/model"
)

// fakeReader is an in-memory stand-in for pgsource.Reader.
type fakeReader struct {
	posts map[string]model.Post
	files map[string]model.DriveFile
	polls map[string]model.Poll
	edits map[string][]model.NoteEdit
	users map[string]model.User
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		posts: map[string]model.Post{},
		files: map[string]model.DriveFile{},
		polls: map[string]model.Poll{},
		edits: map[string][]model.NoteEdit{},
		users: map[string]model.User{},
	}
}

func (f *fakeReader) PostByID(_ context.Context, id string) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeReader) FilesByIDs(_ context.Context, ids []string) ([]model.DriveFile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []model.DriveFile
	for _, id := range ids {
		if file, ok := f.files[id]; ok {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeReader) PollByPostID(_ context.Context, postID string) (*model.Poll, error) {
	p, ok := f.polls[postID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeReader) EditHistoryByPostID(_ context.Context, postID string) ([]model.NoteEdit, error) {
	return f.edits[postID], nil
}

func (f *fakeReader) UserByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// fakeWriter records every insert it receives.
type fakeWriter struct {
	notes         []model.Note
	homeEntries   []model.HomeTimelineEntry
	failFeedUsers map[string]bool
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{failFeedUsers: map[string]bool{}}
}

func (w *fakeWriter) InsertNote(_ context.Context, n *model.Note) error {
	w.notes = append(w.notes, *n)
	return nil
}

func (w *fakeWriter) InsertHomeTimeline(_ context.Context, entry *model.HomeTimelineEntry) error {
	if w.failFeedUsers[entry.FeedUserID] {
		return sql.ErrConnDone
	}
	w.homeEntries = append(w.homeEntries, *entry)
	return nil
}

// fakeVoteStore backs transform.Vote's destination look-up.
type fakeVoteStore struct {
	existing *model.DestPollVote
}

func (s *fakeVoteStore) SelectPollVote(_ context.Context, _, _ string) (*model.DestPollVote, error) {
	return s.existing, nil
}

// rowsFromIDs builds a *sql.Rows over a single string column using sqlmock,
// the same way pgsource.Reader.LocalFollowerIDs would return one.
func rowsFromIDs(ids ...string) (*sql.Rows, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, err
	}
	r := sqlmock.NewRows([]string{"followerId"})
	for _, id := range ids {
		r.AddRow(id)
	}
	mock.ExpectQuery("SELECT").WillReturnRows(r)
	return db.Query("SELECT followerId")
}

// fakeFollowerSource streams a fixed follower list, ignoring followeeID.
type fakeFollowerSource struct {
	ids []string
}

func (f fakeFollowerSource) LocalFollowerIDs(_ context.Context, _ string) (*sql.Rows, error) {
	return rowsFromIDs(f.ids...)
}
