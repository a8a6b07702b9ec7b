//go:build !tinygo

package lpc81x

import "testing"

func TestOutputWritesLevelBeforeDirection(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)

	out := port.Output(p.Pins.PIO0_7, true)
	if got := gpioReg.SET0.Get(); got != 1<<7 {
		t.Errorf("SET0 = %#x, want bit 7", got)
	}
	if !gpioReg.DIR0.HasBits(1 << 7) {
		t.Error("DIR0 bit 7 clear, pin not an output")
	}

	out.Clear()
	if got := gpioReg.CLR0.Get(); got != 1<<7 {
		t.Errorf("CLR0 = %#x after Clear, want bit 7", got)
	}
	out.Toggle()
	if got := gpioReg.NOT0.Get(); got != 1<<7 {
		t.Errorf("NOT0 = %#x after Toggle, want bit 7", got)
	}
}

func TestOutputStartsLow(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)

	port.Output(p.Pins.PIO0_8, false)
	if got := gpioReg.CLR0.Get(); got != 1<<8 {
		t.Errorf("CLR0 = %#x, want bit 8 written before the direction flip", got)
	}
	if gpioReg.SET0.Get() != 0 {
		t.Error("SET0 written for a low initial level")
	}
}

func TestInputAndReleaseRoundTrip(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)

	in := port.Input(p.Pins.PIO0_9)
	if gpioReg.DIR0.HasBits(1 << 9) {
		t.Error("DIR0 bit 9 set for an input")
	}
	gpioReg.PIN0.SetBits(1 << 9)
	if !in.Get() {
		t.Error("Get = false with PIN0 bit high")
	}

	pin := in.Release()
	out := port.Output(pin, true)
	if !gpioReg.DIR0.HasBits(1 << 9) {
		t.Error("released pin could not be reclaimed as output")
	}
	out.Release()
	if gpioReg.DIR0.HasBits(1 << 9) {
		t.Error("Release left the pin driving")
	}
}

func TestDisableClockWithClaimedPinPanics(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	port := p.GPIO.EnableClock(sc)
	out := port.Output(p.Pins.PIO0_12, false)
	mustPanic(t, badGPIOPinsClaimed, func() { port.DisableClock(sc) })
	if !sc.clockEnabled(clockGPIO) {
		t.Fatal("failed DisableClock gated the clock anyway")
	}

	// With every pin back in the pool the gate closes normally.
	out.Release()
	port.DisableClock(sc)
	if sc.clockEnabled(clockGPIO) {
		t.Fatal("DisableClock left the clock on")
	}
}

func TestDisableClockConsumesPort(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	port := p.GPIO.EnableClock(sc)
	g := port.DisableClock(sc)
	if sc.clockEnabled(clockGPIO) {
		t.Fatal("DisableClock left the GPIO clock on")
	}
	mustPanic(t, badHandleReuse, func() { port.Output(p.Pins.PIO0_6, false) })

	// The returned unclocked handle restarts the cycle.
	g.EnableClock(sc)
	if !sc.clockEnabled(clockGPIO) {
		t.Fatal("re-enable after disable failed")
	}
}
