//go:build !tinygo

package lpc81x

import "testing"

// assignedPin reads back which pin a movable function is routed to.
func assignedPin(f movableFunc) uint8 {
	return uint8(swmReg.PINASSIGN[f>>2].Get() >> (8 * (uint32(f) & 3)))
}

func TestMovableFunctionAssignAndRelease(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	if got := assignedPin(funcU0TXD); got != pinAssignNothing {
		t.Fatalf("U0_TXD routed to %d at reset, want unrouted", got)
	}

	serial, err := p.UART0.EnableClock(sc).Configure(sc, UARTConfig{BaudRate: 9600}, p.Pins.PIO0_4, p.Pins.PIO0_0.Pin)
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := assignedPin(funcU0TXD); got != 4 {
		t.Errorf("U0_TXD routed to %d, want 4", got)
	}
	if got := assignedPin(funcU0RXD); got != 0 {
		t.Errorf("U0_RXD routed to %d, want 0", got)
	}

	_, txd, _ := serial.Release()
	if got := assignedPin(funcU0TXD); got != pinAssignNothing {
		t.Errorf("U0_TXD still routed to %d after release", got)
	}

	// The released pin can carry a different peripheral's function.
	p.SPI0.EnableClock(sc).Configure(sc, SPIConfig{Frequency: 1_000_000}, txd, p.Pins.PIO0_6, p.Pins.PIO0_7)
	if got := assignedPin(funcSPI0SCK); got != 4 {
		t.Errorf("SPI0_SCK routed to %d, want 4", got)
	}
}

func TestPinDoubleClaimPanics(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	port := p.GPIO.EnableClock(sc)
	port.Output(p.Pins.PIO0_6, false)
	mustPanic(t, badPinClaim, func() { port.Input(p.Pins.PIO0_6) })
}

func TestPinClaimAcrossPeripheralsPanics(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	port := p.GPIO.EnableClock(sc)
	port.Output(p.Pins.PIO0_4, false)
	uart := p.UART0.EnableClock(sc)
	mustPanic(t, badPinClaim, func() {
		uart.Configure(sc, UARTConfig{BaudRate: 9600}, p.Pins.PIO0_4, p.Pins.PIO0_6)
	})
}

func TestSWDReleaseFreesPins(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon

	if swmReg.PINENABLE0.HasBits(fixedSWDIO | fixedSWCLK) {
		t.Fatal("debug port disabled at reset")
	}
	swdio, swclk := p.SWD.ReleasePins()
	if !swmReg.PINENABLE0.HasBits(fixedSWDIO) || !swmReg.PINENABLE0.HasBits(fixedSWCLK) {
		t.Fatal("ReleasePins left a debug function enabled")
	}

	port := p.GPIO.EnableClock(sc)
	port.Output(swdio, true)
	port.Input(swclk)

	mustPanic(t, badHandleReuse, func() { p.SWD.ReleasePins() })
}

func TestExternalResetReleaseFreesPin(t *testing.T) {
	p := takeSplit(t)

	pin := p.Reset.ReleasePin()
	if !swmReg.PINENABLE0.HasBits(fixedRESET) {
		t.Fatal("ReleasePin left the reset function enabled")
	}
	if pin.index != 5 {
		t.Fatalf("released pin index = %d, want 5", pin.index)
	}
	mustPanic(t, badHandleReuse, func() { p.Reset.ReleasePin() })
}
