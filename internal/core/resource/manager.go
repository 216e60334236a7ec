// Package resource implements the engine's asset cache: a Manager owning
// texture and mesh tables, addressed by string key at load time and by
// lightweight value handles afterwards. Loads deduplicate by key, so a
// repeated load performs no I/O, no decode, and no GPU work; GPU objects are
// realized exactly once per asset. Nothing is ever evicted.
package resource

import (
	"image"
	"image/draw"
	"io"
	"os"
	"sync"

	// Decoders for the common texture formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/lumen-engine/lumen/internal/core/observability/log"
)

// Stats counts cache traffic since the manager was created.
type Stats struct {
	TextureHits   uint64
	TextureMisses uint64
	MeshHits      uint64
	MeshMisses    uint64
	BytesDecoded  uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithOpener replaces the file opener used by LoadTexture. It exists so
// tests and embedded-asset setups can feed the decoder without touching the
// real filesystem.
func WithOpener(open func(path string) (io.ReadCloser, error)) Option {
	return func(m *Manager) {
		m.open = open
	}
}

// Manager owns every cached asset and its GPU objects. Handles it returns
// are valid only against this instance; a handle produced elsewhere misses.
//
// All methods are safe for concurrent use. The single-threaded frame loop
// does not need that, but PreloadTextures loads from worker goroutines and
// the table mutation discipline is the same either way.
type Manager struct {
	id     uuid.UUID
	logger *log.Logger
	open   func(path string) (io.ReadCloser, error)

	mu           sync.Mutex
	textures     []*Texture
	textureIndex map[string]uint32
	meshes       []*Mesh
	meshIndex    map[string]uint32
	stats        Stats
}

// NewManager creates an empty cache. A nil logger is replaced with a no-op
// one.
func NewManager(logger *log.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = log.Nop()
	}
	m := &Manager{
		id:           uuid.New(),
		logger:       logger,
		open:         defaultOpen,
		textureIndex: make(map[string]uint32),
		meshIndex:    make(map[string]uint32),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func defaultOpen(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ID returns the manager's instance identity, embedded in every handle it
// produces.
func (m *Manager) ID() uuid.UUID {
	return m.id
}

// LoadTexture returns the handle for key, loading the file on first use. A
// key already in the table is returned as-is without touching path. On any
// open, decode, or GPU failure the error is a *LoadError and the table is
// left unchanged.
func (m *Manager) LoadTexture(key, path string, dev Device, q Queue) (TextureHandle, error) {
	m.mu.Lock()
	if idx, ok := m.textureIndex[key]; ok {
		m.stats.TextureHits++
		m.mu.Unlock()
		m.logger.Debug("texture cache hit", log.String("key", key))
		return TextureHandle{index: idx, owner: m.id}, nil
	}
	m.mu.Unlock()

	if dev == nil {
		return TextureHandle{}, &LoadError{Key: key, Path: path, Err: ErrNilDevice}
	}
	if q == nil {
		return TextureHandle{}, &LoadError{Key: key, Path: path, Err: ErrNilQueue}
	}

	// Decode outside the lock so a slow file does not stall other loads.
	rgba, err := m.decode(path)
	if err != nil {
		return TextureHandle{}, &LoadError{Key: key, Path: path, Err: err}
	}
	fingerprint := xxhash.Sum64(rgba.Pix)

	m.mu.Lock()
	defer m.mu.Unlock()

	// A concurrent load of the same key may have won the race while we were
	// decoding; the existing entry stands and this decode is discarded
	// without any GPU work, keeping GPU creation at most once per asset.
	if idx, ok := m.textureIndex[key]; ok {
		m.stats.TextureHits++
		return TextureHandle{index: idx, owner: m.id}, nil
	}

	bounds := rgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	gpu, err := dev.CreateTexture2D(key, width, height)
	if err != nil {
		return TextureHandle{}, &LoadError{Key: key, Path: path, Err: err}
	}
	if err := q.WriteTexture(gpu, rgba.Pix, 4*width); err != nil {
		gpu.Release()
		return TextureHandle{}, &LoadError{Key: key, Path: path, Err: err}
	}

	idx := uint32(len(m.textures))
	m.textures = append(m.textures, &Texture{
		width:       width,
		height:      height,
		pixels:      rgba.Pix,
		fingerprint: fingerprint,
		gpu:         gpu,
	})
	m.textureIndex[key] = idx
	m.stats.TextureMisses++
	m.stats.BytesDecoded += uint64(len(rgba.Pix))

	m.logger.Info("texture loaded",
		log.String("key", key),
		log.String("path", path),
		log.Int("width", width),
		log.Int("height", height),
		log.Uint64("fingerprint", fingerprint),
	)
	return TextureHandle{index: idx, owner: m.id}, nil
}

func (m *Manager) decode(path string) (*image.RGBA, error) {
	rc, err := m.open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, err
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// AddMesh registers caller-supplied geometry under key and returns its
// handle. A key already in the table is returned as-is and mesh is ignored.
// There is no I/O on this path, so it cannot fail; if buffer creation on the
// device fails the mesh is cached CPU-side only and the failure is logged.
func (m *Manager) AddMesh(key string, mesh *Mesh, dev Device) MeshHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx, ok := m.meshIndex[key]; ok {
		m.stats.MeshHits++
		m.logger.Debug("mesh cache hit", log.String("key", key))
		return MeshHandle{index: idx, owner: m.id}
	}

	mesh.fingerprint = mesh.computeFingerprint()
	if dev != nil {
		if err := mesh.realize(dev, key); err != nil {
			m.logger.Warn("mesh buffer creation failed",
				log.String("key", key),
				log.Err(err),
			)
		}
	}

	idx := uint32(len(m.meshes))
	m.meshes = append(m.meshes, mesh)
	m.meshIndex[key] = idx
	m.stats.MeshMisses++

	m.logger.Info("mesh added",
		log.String("key", key),
		log.Int("vertices", len(mesh.vertices)),
		log.Int("indices", len(mesh.indices)),
		log.Uint64("fingerprint", mesh.fingerprint),
	)
	return MeshHandle{index: idx, owner: m.id}
}

// Texture redeems a handle. It misses when the handle came from another
// manager or is out of range.
func (m *Manager) Texture(h TextureHandle) (*Texture, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.owner != m.id || int(h.index) >= len(m.textures) {
		return nil, false
	}
	return m.textures[h.index], true
}

// Mesh redeems a handle. Same miss rules as Texture.
func (m *Manager) Mesh(h MeshHandle) (*Mesh, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.owner != m.id || int(h.index) >= len(m.meshes) {
		return nil, false
	}
	return m.meshes[h.index], true
}

// TextureCount returns the number of cached textures.
func (m *Manager) TextureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.textures)
}

// MeshCount returns the number of cached meshes.
func (m *Manager) MeshCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.meshes)
}

// Stats returns a snapshot of cache traffic counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
