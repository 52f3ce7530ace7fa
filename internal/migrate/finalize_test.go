package migrate

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// TestFinalizeDropsConstraintsThenTablesInOrder checks that every
// constraint drop runs before any table drop, in the fixed literal order.
func TestFinalizeDropsConstraintsThenTablesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(true)
	for _, dc := range dropConstraints {
		mock.ExpectExec(regexp.QuoteMeta(dc.table)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range dropTables {
		mock.ExpectExec("DROP TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = finalize(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeAbortsOnFirstFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(true)
	mock.ExpectExec(regexp.QuoteMeta(dropConstraints[0].table)).WillReturnError(assertErr{})

	err = finalize(context.Background(), db)
	require.Error(t, err)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
