package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemoryAppliesSchema(t *testing.T) {
	conn, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var count int
	err = conn.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'platform_credentials', 'metric_snapshots')",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sqlQuery, _, err := conn.StatementBuilder().Select("value").From("platform_credentials").Where("key = ?", "k").ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "key = ?")
}
