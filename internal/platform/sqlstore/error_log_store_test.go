package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLogStore_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	logs := sqlstore.NewErrorLogStore(db, nil)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	older := domain.NewErrorLog("/add_user", "email already exists", domain.ErrorTypeConflict, base)
	newer := domain.NewErrorLog("/find_user", "user not found", domain.ErrorTypeNotFound, base.Add(time.Minute))

	require.NoError(t, logs.Create(ctx, older))
	require.NoError(t, logs.Create(ctx, newer))

	got, err := logs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, "/find_user", got[0].Endpoint)
	assert.Equal(t, domain.ErrorTypeNotFound, got[0].ErrorType)
	assert.True(t, newer.Timestamp.Equal(got[0].Timestamp))
	assert.Equal(t, older.ID, got[1].ID)
}

func TestErrorLogStore_Empty(t *testing.T) {
	db := newTestDB(t)
	logs := sqlstore.NewErrorLogStore(db, nil)

	got, err := logs.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
