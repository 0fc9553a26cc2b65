package issuance_test

import (
	"context"
	"regexp"
	"testing"

	"go-invmis/internal/issuance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (issuance.Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return issuance.NewRepository(gdb), mock
}

func TestIssuanceRepository_CountOpenFailures(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "issuance_failures" WHERE resolved = $1`)).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountOpenFailures(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuanceRepository_ResolveFailure(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "issuance_failures" SET .* WHERE id = \$\d+ AND resolved = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.ResolveFailure(context.Background(), failureID.String(), approverID, "done")

	require.NoError(t, err)
	assert.Zero(t, n, "an already resolved row is left alone")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuanceRepository_CountStaleRuns(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "issuance_runs" WHERE status = $1 AND updated_at < $2`)).
		WithArgs("processing", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountStaleRuns(context.Background(), issuance.StaleRunAge)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
