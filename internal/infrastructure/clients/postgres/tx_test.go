package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewClientFromDB(db, "postgres"), mock
}

func TestWithinTransaction_Commits(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reviews").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, isTx := client.Conn(ctx).(*sqlx.Tx)
		assert.True(t, isTx)
		_, err := client.Conn(ctx).ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", "r-1")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	client, mock := newMockClient(t)
	failure := errors.New("Rating must be between 1 and 5")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := client.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = client.WithinTransaction(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_NestedJoinsOuter(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := client.WithinTransaction(context.Background(), func(outer context.Context) error {
		return client.WithinTransaction(outer, func(inner context.Context) error {
			assert.Same(t, client.Conn(outer), client.Conn(inner))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_WithoutTransactionUsesPool(t *testing.T) {
	client, _ := newMockClient(t)
	assert.Same(t, client.DB(), client.Conn(context.Background()))
}
