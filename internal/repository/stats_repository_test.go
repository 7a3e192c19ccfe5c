package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupStatsMock(t *testing.T) (StatsRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewStatsRepository(db), mock
}

func TestCountUsers(t *testing.T) {
	repo, mock := setupStatsMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountUsers()
	require.NoError(t, err)
	require.Equal(t, int64(12), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDistinctRoles(t *testing.T) {
	repo, mock := setupStatsMock(t)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\("role"\)\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountDistinctRoles()
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTasksByStatus(t *testing.T) {
	repo, mock := setupStatsMock(t)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("Pending", 4).
		AddRow("Completed", 2).
		AddRow("Blocked", 1)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "tasks" GROUP BY`).
		WillReturnRows(rows)

	counts, err := repo.CountTasksByStatus()
	require.NoError(t, err)
	require.Len(t, counts, 3)

	byStatus := map[string]int64{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	require.Equal(t, int64(4), byStatus["Pending"])
	require.Equal(t, int64(2), byStatus["Completed"])
	require.Equal(t, int64(1), byStatus["Blocked"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUsers_QueryError(t *testing.T) {
	repo, mock := setupStatsMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(gorm.ErrInvalidDB)

	_, err := repo.CountUsers()
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
