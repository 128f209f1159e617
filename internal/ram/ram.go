// Package ram provides a basic RAM implementation.
package ram

// RAM represents a fixed-size block of RAM, addressed from 0. Access
// goes through the buffer returned by Bytes, routed by the MMU.
type RAM struct {
	data []byte
}

// NewRAM returns a new zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]byte, size),
	}
}

// Size returns the number of bytes in the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Bytes returns the buffer backing the RAM. It is not a copy.
func (r *RAM) Bytes() []byte {
	return r.data
}
