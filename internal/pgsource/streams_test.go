package pgsource

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPostsWithSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM note WHERE "id" > $1`)).
		WithArgs("p100").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := CountPosts(context.Background(), db, "p100")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestCountPostsWithoutSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM note`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := CountPosts(context.Background(), db, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestStreamPostsFiltersSinceServerSide(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(postColumns(`FROM note WHERE "id" > $1 ORDER BY "id" ASC`))).
		WithArgs("p100").
		WillReturnRows(sqlmock.NewRows(postRowColumns()))

	rows, err := StreamPosts(context.Background(), db, "p100")
	require.NoError(t, err)
	defer rows.Close()
	assert.False(t, rows.Next())
}

func TestScanReactionRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "noteId", "userId", "reaction", "createdAt" FROM note_reaction ORDER BY "id" ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "noteId", "userId", "reaction", "createdAt"}).
			AddRow("r1", "p1", "u1", ":+1:", now))

	rows, err := StreamReactions(context.Background(), db)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	r, err := ScanReactionRow(rows)
	require.NoError(t, err)
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, ":+1:", r.Reaction)
}

func TestScanNotificationRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"id", "notifieeId", "notifierId", "type",
		"noteId", "followRequestId", "userGroupInvitationId", "appAccessTokenId",
		"reaction", "choice", "customBody", "customHeader", "customIcon", "createdAt",
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM notification ORDER BY "id" ASC`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"n1", "u2", "u1", "reaction",
			"p1", nil, nil, nil,
			":+1:", nil, nil, nil, nil, now,
		))

	rows, err := StreamNotifications(context.Background(), db)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	n, err := ScanNotificationRow(rows)
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "reaction", n.Type)
	entityID := n.EntityID()
	require.True(t, entityID.Valid)
	assert.Equal(t, "p1", entityID.String)
}
