package resource

// Texture is a cached image asset: decoded RGBA8 pixels plus the GPU texture
// realized from them. The manager owns both sides; callers only ever see a
// *Texture borrowed through Manager.Texture.
type Texture struct {
	width, height int
	pixels        []byte
	fingerprint   uint64
	gpu           Texture2D
}

// Width returns the pixel width.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the pixel height.
func (t *Texture) Height() int {
	return t.height
}

// Pixels returns the decoded RGBA8 data, 4 bytes per pixel, row-major.
// Callers must treat it as read-only.
func (t *Texture) Pixels() []byte {
	return t.pixels
}

// Fingerprint is the xxhash of the decoded pixels, useful for spotting the
// same image loaded under two keys.
func (t *Texture) Fingerprint() uint64 {
	return t.fingerprint
}

// GPU returns the realized texture object.
func (t *Texture) GPU() Texture2D {
	return t.gpu
}
