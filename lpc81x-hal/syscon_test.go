//go:build !tinygo

package lpc81x

import "testing"

func TestClockGating(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	if sc.clockEnabled(clockUART0) {
		t.Fatal("UART0 clock enabled at reset")
	}
	u := p.UART0.EnableClock(sc)
	if !sc.clockEnabled(clockUART0) {
		t.Fatal("EnableClock left SYSAHBCLKCTRL bit clear")
	}
	u.DisableClock(sc)
	if sc.clockEnabled(clockUART0) {
		t.Fatal("DisableClock left SYSAHBCLKCTRL bit set")
	}
}

func TestEnableClockClearsReset(t *testing.T) {
	p := takeSplit(t)

	if sysconReg.PRESETCTRL.HasBits(1 << resetGPIO) {
		t.Fatal("GPIO reset not asserted at power-on")
	}
	p.GPIO.EnableClock(p.Syscon)
	if !sysconReg.PRESETCTRL.HasBits(1 << resetGPIO) {
		t.Fatal("EnableClock left GPIO in reset")
	}
}

func TestClockGatesAreIndependent(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	p.UART0.EnableClock(sc)
	p.SPI0.EnableClock(sc)
	if !sc.clockEnabled(clockUART0) || !sc.clockEnabled(clockSPI0) {
		t.Fatal("one of two enabled clocks is off")
	}
	if sc.clockEnabled(clockUART1) || sc.clockEnabled(clockSPI1) || sc.clockEnabled(clockI2C) {
		t.Fatal("enabling UART0 and SPI0 touched an unrelated clock gate")
	}
}

func TestPeripheralGatesOffAtSplit(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	// Every peripheral Split hands out in its reset state must have its
	// clock gate off, or the handle state and the hardware bit disagree
	// from the start.
	for _, c := range []clockID{clockI2C, clockGPIO, clockSPI0, clockSPI1, clockUART0, clockUART1, clockACMP} {
		if sc.clockEnabled(c) {
			t.Errorf("clock gate %d open at split", c)
		}
	}
	// The switch matrix clock must run, or pin routing writes would be
	// dropped before any peripheral is enabled.
	if !sc.clockEnabled(clockSWM) {
		t.Error("SWM clock gated at split")
	}
}

func TestMainClockFrequency(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	if got := sc.MainClockFrequency(); got != 12_000_000 {
		t.Fatalf("MainClockFrequency = %d at reset, want the 12 MHz IRC", got)
	}
	sc.SetMainClockFrequency(30_000_000)
	if got := sc.MainClockFrequency(); got != 30_000_000 {
		t.Fatalf("MainClockFrequency = %d after set, want 30000000", got)
	}
}
