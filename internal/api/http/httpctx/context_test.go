package httpctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkozyrev/weekplanner/internal/model"
)

func TestManager_Roundtrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	identity := model.Identity{UserID: uuid.New(), Email: "alice@example.com"}

	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_EmptyContext(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}
