//go:build !tinygo

package volatile

// Get returns the register value.
func (r *Register32) Get() uint32 { return r.Reg }

// Set writes the register value.
func (r *Register32) Set(value uint32) { r.Reg = value }

// Get returns the register value.
func (r *Register8) Get() uint8 { return r.Reg }

// Set writes the register value.
func (r *Register8) Set(value uint8) { r.Reg = value }
