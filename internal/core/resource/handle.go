package resource

import "github.com/google/uuid"

// Handles are small comparable values: an index into the owning manager's
// dense table plus the manager's instance ID. They never own GPU state, so
// they can be copied and stored freely; redeeming a handle against a manager
// that did not produce it is a clean miss, not a crash. Texture and mesh
// handles are distinct types, so one can never be redeemed against the other
// table.

// TextureHandle refers to a texture cached by one Manager.
type TextureHandle struct {
	index uint32
	owner uuid.UUID
}

// MeshHandle refers to a mesh cached by one Manager.
type MeshHandle struct {
	index uint32
	owner uuid.UUID
}
