package ctypes

// WString is the wide-string field type, UTF-16 code units.
type WString []uint16

// GID is a generation-tagged identifier.
type GID struct {
	ID   uint32
	Type uint32
}

// Vector3D is a three-component float vector.
type Vector3D struct {
	X, Y, Z float32
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Point is a two-component float point.
type Point struct {
	X, Y float32
}
