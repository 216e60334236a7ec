package resource

// MeshBuilder accumulates vertices and indices for a Mesh. The Quad and Cube
// constructors cover the common primitives; everything they produce is pure
// CPU-side data, registered with a Manager separately via AddMesh.
type MeshBuilder struct {
	vertices []Vertex
	indices  []uint32
}

// NewMeshBuilder returns an empty builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// AddVertex appends one vertex.
func (b *MeshBuilder) AddVertex(v Vertex) *MeshBuilder {
	b.vertices = append(b.vertices, v)
	return b
}

// AddVertices appends vertices in order.
func (b *MeshBuilder) AddVertices(vs ...Vertex) *MeshBuilder {
	b.vertices = append(b.vertices, vs...)
	return b
}

// AddIndex appends one index.
func (b *MeshBuilder) AddIndex(i uint32) *MeshBuilder {
	b.indices = append(b.indices, i)
	return b
}

// AddIndices appends indices in order.
func (b *MeshBuilder) AddIndices(is ...uint32) *MeshBuilder {
	b.indices = append(b.indices, is...)
	return b
}

// Build returns the accumulated mesh.
func (b *MeshBuilder) Build() *Mesh {
	return NewMesh(b.vertices, b.indices)
}

var (
	white   = [4]float32{1, 1, 1, 1}
	forward = [3]float32{0, 0, 1}
)

// Quad builds a unit-normal rectangle in the XY plane, centered on the
// origin, two triangles.
func Quad(width, height float32) *Mesh {
	hw := width / 2
	hh := height / 2

	vertices := []Vertex{
		{Position: [3]float32{-hw, -hh, 0}, TexCoords: [2]float32{0, 1}, Normal: forward, Color: white},
		{Position: [3]float32{hw, -hh, 0}, TexCoords: [2]float32{1, 1}, Normal: forward, Color: white},
		{Position: [3]float32{hw, hh, 0}, TexCoords: [2]float32{1, 0}, Normal: forward, Color: white},
		{Position: [3]float32{-hw, hh, 0}, TexCoords: [2]float32{0, 0}, Normal: forward, Color: white},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	return NewMesh(vertices, indices)
}

// Cube builds an axis-aligned cube centered on the origin, four vertices per
// face so each face gets flat normals and full texture coordinates.
func Cube(size float32) *Mesh {
	s := size / 2

	vertices := []Vertex{
		// front, +Z
		{Position: [3]float32{-s, -s, s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{0, 0, 1}, Color: white},
		{Position: [3]float32{s, -s, s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{0, 0, 1}, Color: white},
		{Position: [3]float32{s, s, s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{0, 0, 1}, Color: white},
		{Position: [3]float32{-s, s, s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{0, 0, 1}, Color: white},
		// back, -Z
		{Position: [3]float32{s, -s, -s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{0, 0, -1}, Color: white},
		{Position: [3]float32{-s, -s, -s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{0, 0, -1}, Color: white},
		{Position: [3]float32{-s, s, -s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{0, 0, -1}, Color: white},
		{Position: [3]float32{s, s, -s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{0, 0, -1}, Color: white},
		// top, +Y
		{Position: [3]float32{-s, s, s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{0, 1, 0}, Color: white},
		{Position: [3]float32{s, s, s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{0, 1, 0}, Color: white},
		{Position: [3]float32{s, s, -s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{0, 1, 0}, Color: white},
		{Position: [3]float32{-s, s, -s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{0, 1, 0}, Color: white},
		// bottom, -Y
		{Position: [3]float32{-s, -s, -s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{0, -1, 0}, Color: white},
		{Position: [3]float32{s, -s, -s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{0, -1, 0}, Color: white},
		{Position: [3]float32{s, -s, s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{0, -1, 0}, Color: white},
		{Position: [3]float32{-s, -s, s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{0, -1, 0}, Color: white},
		// right, +X
		{Position: [3]float32{s, -s, s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{1, 0, 0}, Color: white},
		{Position: [3]float32{s, -s, -s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{1, 0, 0}, Color: white},
		{Position: [3]float32{s, s, -s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{1, 0, 0}, Color: white},
		{Position: [3]float32{s, s, s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{1, 0, 0}, Color: white},
		// left, -X
		{Position: [3]float32{-s, -s, -s}, TexCoords: [2]float32{0, 1}, Normal: [3]float32{-1, 0, 0}, Color: white},
		{Position: [3]float32{-s, -s, s}, TexCoords: [2]float32{1, 1}, Normal: [3]float32{-1, 0, 0}, Color: white},
		{Position: [3]float32{-s, s, s}, TexCoords: [2]float32{1, 0}, Normal: [3]float32{-1, 0, 0}, Color: white},
		{Position: [3]float32{-s, s, -s}, TexCoords: [2]float32{0, 0}, Normal: [3]float32{-1, 0, 0}, Color: white},
	}

	indices := []uint32{
		0, 1, 2, 0, 2, 3, // front
		4, 5, 6, 4, 6, 7, // back
		8, 9, 10, 8, 10, 11, // top
		12, 13, 14, 12, 14, 15, // bottom
		16, 17, 18, 16, 18, 19, // right
		20, 21, 22, 20, 22, 23, // left
	}

	return NewMesh(vertices, indices)
}
