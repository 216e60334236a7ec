package resource

// The manager realizes GPU objects through the Device and Queue capability
// interfaces below. Both are supplied by the rendering layer on every call
// that may upload; the manager never constructs or owns a device.

// Device creates GPU-side objects from CPU-side descriptions.
type Device interface {
	// CreateTexture2D allocates an RGBA8 texture of the given size.
	CreateTexture2D(label string, width, height int) (Texture2D, error)
	// CreateVertexBuffer uploads vertex data and returns the buffer.
	CreateVertexBuffer(label string, contents []byte) (Buffer, error)
	// CreateIndexBuffer uploads index data and returns the buffer.
	CreateIndexBuffer(label string, contents []byte) (Buffer, error)
}

// Queue writes pixel data into textures created by the matching Device.
type Queue interface {
	WriteTexture(tex Texture2D, rgba []byte, bytesPerRow int) error
}

// Texture2D is an opaque realized GPU texture.
type Texture2D interface {
	Release()
}

// Buffer is an opaque realized GPU buffer.
type Buffer interface {
	Release()
}
