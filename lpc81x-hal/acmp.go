package lpc81x

// ACMPInput selects what feeds one side of the comparator. The values match
// the CTRL COMP_VP_SEL and COMP_VM_SEL encodings.
type ACMPInput uint8

const (
	ACMPInputLadder  ACMPInput = 0
	ACMPInputPin1    ACMPInput = 1 // ACMP_I1 on PIO0_0
	ACMPInputPin2    ACMPInput = 2 // ACMP_I2 on PIO0_1
	ACMPInputBandgap ACMPInput = 6
)

// ACMP is the analog comparator in its reset state: clock gated and, unlike
// the digital peripherals, also powered down in PDRUNCFG. Enable deals with
// both.
type ACMP struct {
	p *acmpPeriph
}

type acmpPeriph struct {
	periph
	hw *acmpHW
}

// Enable powers the comparator's analog block, ungates its register clock,
// takes it out of reset and consumes the handle.
func (a ACMP) Enable(sc *Syscon) ACMPEnabled {
	a.p.transition(stateReset, stateClocked)
	sc.powerUp(powerACMP)
	sc.enableClock(a.p.clk)
	sc.clearReset(a.p.rst)
	return ACMPEnabled{p: a.p}
}

// ACMPEnabled is the powered, running comparator.
type ACMPEnabled struct {
	p *acmpPeriph
}

// Disable powers the analog block back down, gates the clock and consumes
// the handle.
func (a ACMPEnabled) Disable(sc *Syscon) ACMP {
	a.p.transition(stateClocked, stateReset)
	a.p.hw.CTRL.Set(0)
	sc.disableClock(a.p.clk)
	sc.powerDown(powerACMP)
	return ACMP{p: a.p}
}

// SelectInputs connects the positive and negative comparator inputs.
// Selecting ACMPInputPin1 or ACMPInputPin2 only works after the matching
// pin's EnableComparatorInput has connected it to the analog side.
func (a *ACMPEnabled) SelectInputs(pos, neg ACMPInput) {
	if a.p.state != stateClocked {
		panic(badHandleReuse)
	}
	a.p.hw.CTRL.ReplaceBits(uint32(pos), acmpCTRL_COMP_SEL_Msk, acmpCTRL_COMP_VP_SEL_Pos)
	a.p.hw.CTRL.ReplaceBits(uint32(neg), acmpCTRL_COMP_SEL_Msk, acmpCTRL_COMP_VM_SEL_Pos)
}

// SetLadder enables the 32-step voltage ladder between VDD and ground and
// selects tap step (0 is ground, 31 is VDD). Feed it to a comparator side
// with ACMPInputLadder.
func (a *ACMPEnabled) SetLadder(step uint8) {
	if step > 31 {
		step = 31
	}
	a.p.hw.LAD.Set(1 | uint32(step)<<1)
}

// Output reads the comparator's current decision: true when the positive
// input is above the negative one.
func (a *ACMPEnabled) Output() bool {
	return a.p.hw.CTRL.HasBits(acmpCTRL_COMPSTAT)
}

// AnalogPin is a pin handed over to its fixed analog function. The digital
// input is disconnected while it exists.
type AnalogPin struct {
	pin       Pin
	enableBit uint32
	sel       ACMPInput
}

// EnableComparatorInput connects PIO0_0 to the comparator's ACMP_I1 input
// and consumes the pin.
func (p ACMP1Pin) EnableComparatorInput() AnalogPin {
	return enableAnalog(p.Pin, fixedACMPI1, ACMPInputPin1)
}

// EnableComparatorInput connects PIO0_1 to the comparator's ACMP_I2 input
// and consumes the pin.
func (p ACMP2Pin) EnableComparatorInput() AnalogPin {
	return enableAnalog(p.Pin, fixedACMPI2, ACMPInputPin2)
}

func enableAnalog(p Pin, bit uint32, sel ACMPInput) AnalogPin {
	p.bank.claim(p, pinAnalog)
	swmReg.PINENABLE0.ClearBits(bit)
	return AnalogPin{pin: p, enableBit: bit, sel: sel}
}

// Input returns the selector value that routes this pin into the
// comparator.
func (a *AnalogPin) Input() ACMPInput { return a.sel }

// Release reconnects the digital input and returns the bare pin.
func (a *AnalogPin) Release() Pin {
	a.pin.bank.release(a.pin, pinAnalog)
	swmReg.PINENABLE0.SetBits(a.enableBit)
	return a.pin
}
