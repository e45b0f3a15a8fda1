package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct{ *sql.Tx }

func (s *stubTx) Commit() error   { return nil }
func (s *stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	fallback := &DB{}
	tx := &stubTx{}

	assert.Same(t, fallback, GetExecutor(context.Background(), fallback))
	assert.False(t, IsInTransaction(context.Background()))

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, TxExecutor(tx), GetExecutor(ctx, fallback))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM staff"))
	assert.Equal(t, "update", operation("  UPDATE appointments SET status = $1"))
	assert.Equal(t, "unknown", operation(""))
}
