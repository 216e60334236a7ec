package resource

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Vertex is the interleaved vertex layout shared by every mesh.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
	Normal    [3]float32
	Color     [4]float32
}

// vertexStride is the byte size of one encoded Vertex.
const vertexStride = 12 * 4

// Mesh is a cached geometry asset: CPU-side vertex and index data plus the
// GPU buffers realized from them. Buffers are created at most once, when the
// mesh is registered with a Manager.
type Mesh struct {
	vertices    []Vertex
	indices     []uint32
	fingerprint uint64

	vertexBuffer Buffer
	indexBuffer  Buffer
}

// NewMesh wraps caller-supplied geometry. No GPU work happens here.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{
		vertices: vertices,
		indices:  indices,
	}
}

// Vertices returns the CPU-side vertex data.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the CPU-side index data.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// VertexBuffer returns the realized GPU vertex buffer, or nil before
// registration (or after a failed upload).
func (m *Mesh) VertexBuffer() Buffer {
	return m.vertexBuffer
}

// IndexBuffer returns the realized GPU index buffer, or nil before
// registration.
func (m *Mesh) IndexBuffer() Buffer {
	return m.indexBuffer
}

// Fingerprint is the xxhash of the encoded geometry, set at registration.
func (m *Mesh) Fingerprint() uint64 {
	return m.fingerprint
}

// realize uploads both buffers. On failure any partially created buffer is
// released so the mesh either has both buffers or neither.
func (m *Mesh) realize(dev Device, label string) error {
	if m.vertexBuffer != nil || m.indexBuffer != nil {
		return nil
	}

	vb, err := dev.CreateVertexBuffer(label, m.vertexBytes())
	if err != nil {
		return err
	}
	ib, err := dev.CreateIndexBuffer(label, m.indexBytes())
	if err != nil {
		vb.Release()
		return err
	}

	m.vertexBuffer = vb
	m.indexBuffer = ib
	return nil
}

func (m *Mesh) computeFingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.Write(m.vertexBytes())
	_, _ = h.Write(m.indexBytes())
	return h.Sum64()
}

// vertexBytes encodes the vertices little-endian in declaration order.
func (m *Mesh) vertexBytes() []byte {
	out := make([]byte, 0, len(m.vertices)*vertexStride)
	for _, v := range m.vertices {
		for _, f := range v.Position {
			out = appendFloat32(out, f)
		}
		for _, f := range v.TexCoords {
			out = appendFloat32(out, f)
		}
		for _, f := range v.Normal {
			out = appendFloat32(out, f)
		}
		for _, f := range v.Color {
			out = appendFloat32(out, f)
		}
	}
	return out
}

func (m *Mesh) indexBytes() []byte {
	out := make([]byte, 0, len(m.indices)*4)
	for _, i := range m.indices {
		out = binary.LittleEndian.AppendUint32(out, i)
	}
	return out
}

func appendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}
