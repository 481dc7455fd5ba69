package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetMissing(t *testing.T) {
	m, err := NewMemory()
	require.NoError(t, err)

	_, err = m.Get(context.Background(), "cart_items")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory()
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "cart_items", []byte(`[1]`)))
	require.NoError(t, m.Set(ctx, "cart_items", []byte(`[2]`)))
	require.NoError(t, m.Set(ctx, "other", []byte(`"x"`)))

	got, err := m.Get(ctx, "cart_items")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(got))

	got, err = m.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(got))
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory()
	require.NoError(t, err)

	value := []byte(`[1]`)
	require.NoError(t, m.Set(ctx, "k", value))
	value[1] = '9'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))

	got[1] = '7'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}
