//go:build !tinygo

package lpc81x

import "testing"

func TestEdgeInterruptBinding(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)
	in := port.Input(p.Pins.PIO0_12)

	edge := p.PinInterrupts[3].OnEdge(&in, true, false)
	if got := sysconReg.PINTSEL[3].Get(); got != 12 {
		t.Errorf("PINTSEL[3] = %d, want 12", got)
	}
	if pinintReg.ISEL.HasBits(1 << 3) {
		t.Error("ISEL bit set, channel is in level mode")
	}
	if !sysconReg.STARTERP1.HasBits(1 << 3) {
		t.Error("channel not armed as a wakeup source")
	}

	ch := edge.Release()
	if sysconReg.STARTERP1.HasBits(1 << 3) {
		t.Error("Release left the wakeup source armed")
	}

	// The released channel can bind a different pin.
	in2 := port.Input(p.Pins.PIO0_13)
	ch.OnLevel(&in2, true)
	if got := sysconReg.PINTSEL[3].Get(); got != 13 {
		t.Errorf("PINTSEL[3] = %d after rebind, want 13", got)
	}
	if !pinintReg.ISEL.HasBits(1 << 3) {
		t.Error("ISEL bit clear, channel is not in level mode")
	}
}

func TestBoundPinCannotBeReleased(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)
	in := port.Input(p.Pins.PIO0_12)

	edge := p.PinInterrupts[1].OnEdge(&in, true, false)
	mustPanic(t, badPinWatched, func() { in.Release() })

	// After the channel lets go the pin can move on to another function.
	edge.Release()
	pin := in.Release()
	port.Output(pin, false)
}

func TestChannelDoubleBindPanics(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)
	in := port.Input(p.Pins.PIO0_12)

	ch := p.PinInterrupts[0]
	ch.OnEdge(&in, true, true)
	mustPanic(t, badHandleReuse, func() { ch.OnEdge(&in, false, true) })
}

func TestChannelsAreIndependent(t *testing.T) {
	p := takeSplit(t)
	port := p.GPIO.EnableClock(p.Syscon)
	a := port.Input(p.Pins.PIO0_14)
	b := port.Input(p.Pins.PIO0_15)

	p.PinInterrupts[0].OnEdge(&a, true, false)
	p.PinInterrupts[7].OnEdge(&b, false, true)
	if got := sysconReg.PINTSEL[0].Get(); got != 14 {
		t.Errorf("PINTSEL[0] = %d, want 14", got)
	}
	if got := sysconReg.PINTSEL[7].Get(); got != 15 {
		t.Errorf("PINTSEL[7] = %d, want 15", got)
	}
}
