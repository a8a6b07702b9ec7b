package lpc81x

// GPIO is the GPIO port with its clock gated, the state it is in at reset.
// Enabling the clock yields a GPIOPort that can claim pins.
type GPIO struct {
	p *gpioPeriph
}

const badGPIOPinsClaimed = "lpc81x: gpio pin still claimed"

type gpioPeriph struct {
	periph
	hw   *gpioHW
	bank *pinBank
}

// EnableClock ungates the GPIO port's clock, clears its reset and consumes
// the handle, yielding the usable port.
func (g GPIO) EnableClock(sc *Syscon) GPIOPort {
	g.p.transition(stateReset, stateClocked)
	sc.enableClock(g.p.clk)
	sc.clearReset(g.p.rst)
	return GPIOPort{p: g.p}
}

// GPIOPort is the clocked GPIO port. It claims pins one at a time as digital
// inputs or outputs; the port handle itself stays usable throughout.
type GPIOPort struct {
	p *gpioPeriph
}

// DisableClock gates the port's clock again and consumes the handle. All
// pins must have been released first; a pin still claimed for GPIO panics,
// because its input and output handles would keep writing registers the
// gated block no longer latches.
func (g GPIOPort) DisableClock(sc *Syscon) GPIO {
	for i := range g.p.bank.rec {
		switch g.p.bank.rec[i].state {
		case pinGPIOInput, pinGPIOOutput:
			panic(badGPIOPinsClaimed)
		}
	}
	g.p.transition(stateClocked, stateReset)
	sc.disableClock(g.p.clk)
	return GPIO{p: g.p}
}

// Output claims a pin as a push-pull digital output. The output level is
// written before the direction flips, so the pin never drives a stale value.
func (g GPIOPort) Output(p Pin, high bool) PinOutput {
	if g.p.state != stateClocked {
		panic(badHandleReuse)
	}
	p.bank.claim(p, pinGPIOOutput)
	mask := uint32(1) << p.index
	if high {
		g.p.hw.SET0.Set(mask)
	} else {
		g.p.hw.CLR0.Set(mask)
	}
	g.p.hw.DIR0.SetBits(mask)
	return PinOutput{hw: g.p.hw, pin: p}
}

// Input claims a pin as a digital input.
func (g GPIOPort) Input(p Pin) PinInput {
	if g.p.state != stateClocked {
		panic(badHandleReuse)
	}
	p.bank.claim(p, pinGPIOInput)
	g.p.hw.DIR0.ClearBits(1 << p.index)
	return PinInput{hw: g.p.hw, pin: p}
}

// PinOutput is a pin configured as a digital output.
type PinOutput struct {
	hw  *gpioHW
	pin Pin
}

// Set drives the pin high.
func (o *PinOutput) Set() { o.hw.SET0.Set(1 << o.pin.index) }

// Clear drives the pin low.
func (o *PinOutput) Clear() { o.hw.CLR0.Set(1 << o.pin.index) }

// Toggle inverts the pin's level.
func (o *PinOutput) Toggle() { o.hw.NOT0.Set(1 << o.pin.index) }

// Get reports the level currently driven.
func (o *PinOutput) Get() bool { return o.hw.PIN0.HasBits(1 << o.pin.index) }

// Release flips the pin back to input direction and returns the bare pin.
func (o *PinOutput) Release() Pin {
	o.pin.bank.release(o.pin, pinGPIOOutput)
	o.hw.DIR0.ClearBits(1 << o.pin.index)
	return o.pin
}

// PinInput is a pin configured as a digital input.
type PinInput struct {
	hw  *gpioHW
	pin Pin
}

// Get reads the pin's level.
func (i *PinInput) Get() bool { return i.hw.PIN0.HasBits(1 << i.pin.index) }

// Release returns the bare pin.
func (i *PinInput) Release() Pin {
	i.pin.bank.release(i.pin, pinGPIOInput)
	return i.pin
}
