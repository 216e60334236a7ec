package resource

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// preloadWorkers bounds concurrent decodes during a batch preload.
const preloadWorkers = 4

// TextureRequest names one texture for PreloadTextures.
type TextureRequest struct {
	Key  string
	Path string
}

// PreloadTextures loads a batch of textures with bounded parallelism,
// typically at startup. Decoding runs on worker goroutines; table insertion
// stays serialized behind the manager's mutex, and a key that repeats within
// the batch is still loaded only once. The first failure cancels the
// remaining loads and is returned; already-inserted entries stay cached.
func (m *Manager) PreloadTextures(ctx context.Context, reqs []TextureRequest, dev Device, q Queue) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadWorkers)

	for _, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := m.LoadTexture(req.Key, req.Path, dev, q)
			return err
		})
	}
	return g.Wait()
}
