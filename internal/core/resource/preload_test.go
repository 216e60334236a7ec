package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreloadTextures(t *testing.T) {
	m, _ := newTestManager(t, map[string][]byte{
		"a.png": pngBytes(t, 2, 2),
		"b.png": pngBytes(t, 4, 4),
		"c.png": pngBytes(t, 8, 8),
	})
	dev := &mockDevice{}
	q := &mockQueue{}

	err := m.PreloadTextures(context.Background(), []TextureRequest{
		{Key: "a", Path: "a.png"},
		{Key: "b", Path: "b.png"},
		{Key: "c", Path: "c.png"},
	}, dev, q)
	require.NoError(t, err)

	assert.Equal(t, 3, m.TextureCount())
	assert.Equal(t, 3, dev.texturesCreated)
}

func TestPreloadTexturesRepeatedKeyLoadsOnce(t *testing.T) {
	m, _ := newTestManager(t, map[string][]byte{
		"a.png": pngBytes(t, 2, 2),
	})
	dev := &mockDevice{}
	q := &mockQueue{}

	reqs := make([]TextureRequest, 16)
	for i := range reqs {
		reqs[i] = TextureRequest{Key: "a", Path: "a.png"}
	}

	err := m.PreloadTextures(context.Background(), reqs, dev, q)
	require.NoError(t, err)

	assert.Equal(t, 1, m.TextureCount())
	assert.Equal(t, 1, dev.texturesCreated, "racing loads of one key must realize one GPU texture")
	assert.Equal(t, 1, q.writes)
}

func TestPreloadTexturesSurfacesFailure(t *testing.T) {
	m, _ := newTestManager(t, map[string][]byte{
		"good.png": pngBytes(t, 2, 2),
	})

	err := m.PreloadTextures(context.Background(), []TextureRequest{
		{Key: "good", Path: "good.png"},
		{Key: "bad", Path: "missing.png"},
	}, &mockDevice{}, &mockQueue{})

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "bad", loadErr.Key)

	// The failed key is absent; a successful sibling may or may not have
	// completed before cancellation, but it is never half-inserted.
	_, ok := m.Texture(TextureHandle{})
	assert.False(t, ok)
}

func TestPreloadTexturesCancelledContext(t *testing.T) {
	m, _ := newTestManager(t, map[string][]byte{
		"a.png": pngBytes(t, 2, 2),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.PreloadTextures(ctx, []TextureRequest{{Key: "a", Path: "a.png"}}, &mockDevice{}, &mockQueue{})
	assert.ErrorIs(t, err, context.Canceled)
}
