// Package volatile provides the register cell type used by the LPC81x HAL.
//
// On a TinyGo build every access compiles to a volatile load or store via
// runtime/volatile, so the register structs in the hal package can be placed
// directly over the chip's memory map. On other builds the cells are plain
// memory, which lets the HAL's bookkeeping and register sequencing run under
// `go test` against in-memory register blocks.
package volatile

// Register32 is a single 32-bit hardware register.
type Register32 struct {
	Reg uint32
}

// SetBits sets the bits of mask in the register.
func (r *Register32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits of mask in the register.
func (r *Register32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// HasBits reports whether any bit of mask is set in the register.
func (r *Register32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits writes value to the field described by mask and pos, leaving
// the rest of the register unchanged. mask is not shifted; it describes the
// field at bit 0.
func (r *Register32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Register8 is a single 8-bit hardware register.
type Register8 struct {
	Reg uint8
}
