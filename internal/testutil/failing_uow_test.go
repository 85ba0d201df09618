package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected")

func insertTwoCoordinates(ctx context.Context, tx db.DBTX) error {
	for _, east := range []float64{1, 2} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO coordinates (east, north) VALUES (?, ?)`, east, 0.0); err != nil {
			return err
		}
	}
	return nil
}

func countCoordinates(t *testing.T, uow db.UnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM coordinates`).Scan(&n)
	}))
	return n
}

func TestFailingUoW_FailsNthWriteAndRollsBack(t *testing.T) {
	database := NewTestDB(t)
	uow := &FailingUoW{DB: database, FailOn: 2, Err: errInjected}

	err := uow.WithinTx(context.Background(), insertTwoCoordinates)
	require.ErrorIs(t, err, errInjected)
	assert.Zero(t, countCoordinates(t, NewTestUoW(database)))
}

func TestFailingUoW_FailsMatchingWrite(t *testing.T) {
	database := NewTestDB(t)

	miss := &FailingUoW{DB: database, Match: "INSERT INTO audit_log", Err: errInjected}
	require.NoError(t, miss.WithinTx(context.Background(), insertTwoCoordinates))
	assert.Equal(t, 2, countCoordinates(t, miss))

	hit := &FailingUoW{DB: database, Match: "INSERT INTO coordinates", Err: errInjected}
	require.ErrorIs(t, hit.WithinTx(context.Background(), insertTwoCoordinates), errInjected)
	assert.Equal(t, 2, countCoordinates(t, hit))
}
