//go:build tinygo

package volatile

import rv "runtime/volatile"

// Get returns the register value with a volatile load.
func (r *Register32) Get() uint32 {
	return rv.LoadUint32(&r.Reg)
}

// Set writes the register value with a volatile store.
func (r *Register32) Set(value uint32) {
	rv.StoreUint32(&r.Reg, value)
}

// Get returns the register value with a volatile load.
func (r *Register8) Get() uint8 {
	return rv.LoadUint8(&r.Reg)
}

// Set writes the register value with a volatile store.
func (r *Register8) Set(value uint8) {
	rv.StoreUint8(&r.Reg, value)
}
