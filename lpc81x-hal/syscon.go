package lpc81x

// clockID is a peripheral's bit position in SYSAHBCLKCTRL (UM10601 table
// 30).
type clockID uint8

const (
	clockROM      clockID = 1
	clockRAM      clockID = 2
	clockFLASHREG clockID = 3
	clockFLASH    clockID = 4
	clockI2C      clockID = 5
	clockGPIO     clockID = 6
	clockSWM      clockID = 7
	clockSCT      clockID = 8
	clockWKT      clockID = 9
	clockMRT      clockID = 10
	clockSPI0     clockID = 11
	clockSPI1     clockID = 12
	clockCRC      clockID = 13
	clockUART0    clockID = 14
	clockUART1    clockID = 15
	clockUART2    clockID = 16
	clockWWDT     clockID = 17
	clockIOCON    clockID = 18
	clockACMP     clockID = 19
)

// resetID is a peripheral's bit position in PRESETCTRL (UM10601 table 9).
// The bits are active low: 0 asserts reset.
type resetID uint8

const (
	resetSPI0    resetID = 0
	resetSPI1    resetID = 1
	resetUARTFRG resetID = 2
	resetUART0   resetID = 3
	resetUART1   resetID = 4
	resetUART2   resetID = 5
	resetI2C     resetID = 6
	resetMRT     resetID = 7
	resetSCT     resetID = 8
	resetWKT     resetID = 9
	resetGPIO    resetID = 10
	resetFLASH   resetID = 11
	resetACMP    resetID = 12
)

// powerID is an analog block's bit position in PDRUNCFG (UM10601 table 44).
// The bits are active low: 0 powers the block.
type powerID uint8

const (
	powerIRCOUT powerID = 0
	powerIRC    powerID = 1
	powerFLASH  powerID = 2
	powerBOD    powerID = 3
	powerSYSOSC powerID = 4
	powerWDTOSC powerID = 5
	powerSYSPLL powerID = 6
	powerACMP   powerID = 15
)

// ircFrequency is the factory-trimmed internal RC oscillator frequency the
// chip boots from.
const ircFrequency = 12_000_000

// Syscon is the handle to the system configuration peripheral. It is the
// power/clock controller for everything else: peripheral handles present
// themselves here to have their clock ungated, their reset cleared or their
// analog block powered.
//
// Unlike the other peripherals, SYSCON needs no enabling of its own; its
// clock is always running. Device.Split therefore hands it out permanently
// available.
type Syscon struct {
	hw     *sysconHW
	mainHz uint32
	nc     noCopy
}

func (sc *Syscon) enableClock(c clockID)  { sc.hw.SYSAHBCLKCTRL.SetBits(1 << c) }
func (sc *Syscon) disableClock(c clockID) { sc.hw.SYSAHBCLKCTRL.ClearBits(1 << c) }

// clockEnabled reports the hardware state of one clock gate. The tests use
// it to check that handle states and register bits never diverge.
func (sc *Syscon) clockEnabled(c clockID) bool { return sc.hw.SYSAHBCLKCTRL.HasBits(1 << c) }

func (sc *Syscon) assertReset(r resetID) { sc.hw.PRESETCTRL.ClearBits(1 << r) }
func (sc *Syscon) clearReset(r resetID)  { sc.hw.PRESETCTRL.SetBits(1 << r) }

func (sc *Syscon) powerUp(b powerID)   { sc.hw.PDRUNCFG.ClearBits(1 << b) }
func (sc *Syscon) powerDown(b powerID) { sc.hw.PDRUNCFG.SetBits(1 << b) }

// MainClockFrequency returns the main clock frequency in hertz that divider
// computations are based on. After reset this is the 12 MHz IRC.
func (sc *Syscon) MainClockFrequency() uint32 { return sc.mainHz }

// SetMainClockFrequency records the main clock frequency in hertz. The HAL
// does not reprogram the PLL itself; startup code that selects another main
// clock must report the resulting frequency here before peripherals are
// configured, or baud and bit-rate dividers will be computed from the wrong
// base.
func (sc *Syscon) SetMainClockFrequency(hz uint32) { sc.mainHz = hz }

// setUARTClock programs the common USART clock: an integer divider off the
// main clock plus the fractional rate generator. U_PCLK is shared by all
// USARTs on the chip, so the most recent Configure wins.
//
// The fractional generator divider must be 0xFF for the MULT field to have
// the documented effect (UM10601 section 4.6.19), giving
//
//	U_PCLK = mainclk/div * 256/(256+mult)
func (sc *Syscon) setUARTClock(div uint8, mult uint8) {
	sc.hw.UARTCLKDIV.Set(uint32(div))
	sc.hw.UARTFRGDIV.Set(0xFF)
	sc.hw.UARTFRGMULT.Set(uint32(mult))
}
