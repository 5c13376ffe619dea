package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowInsertsConflictFree(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFollowRepository(gdb)

	follower, following := uuid.New(), uuid.New()
	mock.ExpectExec(`INSERT INTO follows .* ON CONFLICT \(follower_id, following_id\) DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), follower, following, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Follow(context.Background(), follower, following))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowDuplicateIsNoop(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFollowRepository(gdb)

	follower, following := uuid.New(), uuid.New()
	mock.ExpectExec(`INSERT INTO follows`).
		WithArgs(sqlmock.AnyArg(), follower, following, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Follow(context.Background(), follower, following))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountFollowersQueriesIncomingEdges(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFollowRepository(gdb)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountFollowers(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestIsFollowingDirectional(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewFollowRepository(gdb)

	follower, following := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).
		WithArgs(follower, following).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.IsFollowing(context.Background(), follower, following)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
