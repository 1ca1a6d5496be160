package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/partner-plan-api/internal/domain"
)

// execOnlyConn responde apenas a ExecContext, suficiente para as escritas sem RETURNING
type execOnlyConn struct {
	result sql.Result
	err    error
	query  string
}

func (c *execOnlyConn) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	c.query = query
	return c.result, c.err
}

func (c *execOnlyConn) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (c *execOnlyConn) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestIsInvalidID(t *testing.T) {
	invalidUUID := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

	assert.True(t, isInvalidID(invalidUUID))
	assert.True(t, isInvalidID(fmt.Errorf("query: %w", invalidUUID)))
	assert.False(t, isInvalidID(&pq.Error{Code: "23505"}))
	assert.False(t, isInvalidID(errors.New("connection refused")))
	assert.False(t, isInvalidID(nil))
}

func TestWritesWithMalformedIDAreNotFound(t *testing.T) {
	conn := &execOnlyConn{err: &pq.Error{Code: "22P02"}}

	plans := NewBusinessPlanRepository(conn)
	require.ErrorIs(t, plans.Delete(context.Background(), "abc"), ErrNoRowsAffected)
	require.ErrorIs(t, plans.UpdateStatus(context.Background(), "abc", domain.BusinessPlanStatusActive), ErrNoRowsAffected)

	require.ErrorIs(t, NewEvaluationRepository(conn).Delete(context.Background(), "abc"), ErrNoRowsAffected)
	require.ErrorIs(t, NewBookkeepingRepository(conn).Delete(context.Background(), "abc"), ErrNoRowsAffected)
}

func TestWritesKeepOtherDatabaseErrors(t *testing.T) {
	conn := &execOnlyConn{err: &pq.Error{Code: "23503", Message: "foreign key violation"}}

	err := NewBusinessPlanRepository(conn).Delete(context.Background(), "6f1c2d1e-7b0a-4d55-9c4e-0a3f5e2b1c9d")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoRowsAffected))
	assert.Contains(t, err.Error(), "23503")
}

func TestDeleteWithoutMatchingRow(t *testing.T) {
	conn := &execOnlyConn{result: driverResult(0)}

	err := NewBusinessPlanRepository(conn).Delete(context.Background(), "6f1c2d1e-7b0a-4d55-9c4e-0a3f5e2b1c9d")
	require.ErrorIs(t, err, ErrNoRowsAffected)
	assert.Contains(t, conn.query, "DELETE FROM business_plans WHERE id = $1")
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }

func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }
