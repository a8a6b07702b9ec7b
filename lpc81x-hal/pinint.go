package lpc81x

// PinInterrupt is one of the eight pin interrupt channels, unbound. Binding
// it to a digital input consumes the channel; releasing the bound form gives
// it back.
//
// The HAL only programs the pin interrupt block itself. Enabling the
// channel's line in the NVIC and registering a handler stay with the
// application, because how that is done depends on the runtime.
type PinInterrupt struct {
	p *pinintChannel
}

type pinintChannel struct {
	hw     *pinintHW
	syscon *sysconHW
	index  uint8
	state  periphState
	pin    Pin
}

// OnEdge binds the channel to in's pin as an edge detector for the selected
// edges and consumes the channel handle. The input stays usable; the
// channel watches it.
func (pi PinInterrupt) OnEdge(in *PinInput, rising, falling bool) EdgeInterrupt {
	c := pi.p
	c.bind(in)
	c.hw.ISEL.ClearBits(1 << c.index)
	c.setEdges(rising, falling)
	return EdgeInterrupt{p: c, rising: rising, falling: falling}
}

// OnLevel binds the channel to in's pin as a level detector for the given
// active level and consumes the channel handle.
func (pi PinInterrupt) OnLevel(in *PinInput, high bool) LevelInterrupt {
	c := pi.p
	c.bind(in)
	c.hw.ISEL.SetBits(1 << c.index)
	// For level mode IENR is the enable and IENF selects the active level.
	if high {
		c.hw.SIENF.Set(1 << c.index)
	} else {
		c.hw.CIENF.Set(1 << c.index)
	}
	c.hw.SIENR.Set(1 << c.index)
	return LevelInterrupt{p: c}
}

// bind points the channel at the input's pin and places a hold on it: a
// watched pin cannot be released or repurposed until the channel lets go,
// so PINTSEL never ends up pointing at a pin that moved on.
func (c *pinintChannel) bind(in *PinInput) {
	if c.state != stateReset {
		panic(badHandleReuse)
	}
	c.state = stateConfigured
	c.pin = in.pin
	c.pin.bank.rec[c.pin.index].watchers++
	c.syscon.PINTSEL[c.index].Set(uint32(in.pin.index))
	// Arm the channel as a deep-sleep wakeup source while it is bound.
	c.syscon.STARTERP1.SetBits(1 << c.index)
}

func (c *pinintChannel) setEdges(rising, falling bool) {
	if rising {
		c.hw.SIENR.Set(1 << c.index)
	} else {
		c.hw.CIENR.Set(1 << c.index)
	}
	if falling {
		c.hw.SIENF.Set(1 << c.index)
	} else {
		c.hw.CIENF.Set(1 << c.index)
	}
}

func (c *pinintChannel) release() PinInterrupt {
	if c.state != stateConfigured {
		panic(badHandleReuse)
	}
	c.state = stateReset
	c.pin.bank.rec[c.pin.index].watchers--
	c.hw.CIENR.Set(1 << c.index)
	c.hw.CIENF.Set(1 << c.index)
	c.hw.IST.Set(1 << c.index)
	c.syscon.STARTERP1.ClearBits(1 << c.index)
	return PinInterrupt{p: c}
}

// EdgeInterrupt is a channel bound as an edge detector.
type EdgeInterrupt struct {
	p               *pinintChannel
	rising, falling bool
}

// Pending reports whether an enabled edge was seen since the last
// Acknowledge.
func (e *EdgeInterrupt) Pending() bool { return e.p.hw.IST.HasBits(1 << e.p.index) }

// Acknowledge clears the pending edge.
func (e *EdgeInterrupt) Acknowledge() { e.p.hw.IST.Set(1 << e.p.index) }

// Disable masks the channel without unbinding it.
func (e *EdgeInterrupt) Disable() {
	e.p.hw.CIENR.Set(1 << e.p.index)
	e.p.hw.CIENF.Set(1 << e.p.index)
}

// Enable re-arms the edges selected when the channel was bound.
func (e *EdgeInterrupt) Enable() { e.p.setEdges(e.rising, e.falling) }

// Release unbinds the channel and hands it back.
func (e *EdgeInterrupt) Release() PinInterrupt { return e.p.release() }

// LevelInterrupt is a channel bound as a level detector.
type LevelInterrupt struct {
	p *pinintChannel
}

// Pending reports whether the line is at its active level with the channel
// enabled. Level interrupts stay pending for as long as the line does; there
// is nothing to acknowledge.
func (l *LevelInterrupt) Pending() bool { return l.p.hw.IST.HasBits(1 << l.p.index) }

// Disable masks the channel without unbinding it.
func (l *LevelInterrupt) Disable() { l.p.hw.CIENR.Set(1 << l.p.index) }

// Enable unmasks the channel.
func (l *LevelInterrupt) Enable() { l.p.hw.SIENR.Set(1 << l.p.index) }

// Release unbinds the channel and hands it back.
func (l *LevelInterrupt) Release() PinInterrupt { return l.p.release() }
