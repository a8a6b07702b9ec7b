// Package lpc81x is a hardware abstraction layer for the NXP LPC81x family
// of Cortex-M0+ microcontrollers.
//
// The HAL models every peripheral's lifecycle in its handle type. A
// peripheral starts out with its clock gated; enabling the clock through the
// SYSCON handle consumes the unclocked handle and yields a clocked one, and
// configuring consumes the clocked handle (plus the pins the peripheral
// drives) and yields a usable driver. Code that skips a stage does not
// compile, because no method exists on the handle it holds. Go cannot forbid
// reusing a handle value after it was consumed, so every transition also
// checks a one-byte lifecycle state and panics on a stale handle; that check
// is the only runtime cost of the scheme.
//
// None of the operations here block, allocate, or take locks. The HAL
// assumes a single thread of control; interrupt handlers must not call into
// a handle that foreground code owns.
package lpc81x

import "errors"

// ErrDeviceTaken is returned by TakeDevice after the device has been handed
// out once.
var ErrDeviceTaken = errors.New("lpc81x: device already taken")

const (
	badHandleReuse = "lpc81x: peripheral handle already consumed"
	badDeviceSplit = "lpc81x: device already split"
)

var deviceTaken bool

// Device is the undivided set of the chip's peripherals. There is at most
// one instance per program run.
type Device struct {
	split bool
	nc    noCopy
}

// TakeDevice hands out the peripheral set. It succeeds exactly once per
// program run; every later call returns ErrDeviceTaken. Calling it twice is
// a programming error, not a condition to recover from.
//
// TakeDevice performs no register writes and must be called from the main
// goroutine before interrupts are enabled.
func TakeDevice() (*Device, error) {
	if deviceTaken {
		return nil, ErrDeviceTaken
	}
	deviceTaken = true
	return &Device{}, nil
}

// Peripherals holds one handle per peripheral, as produced by Device.Split.
// Every peripheral except the always-available SYSCON and PMU starts with
// its clock gated.
type Peripherals struct {
	// Syscon is the system configuration handle. It gates clock, reset and
	// analog power for everything else and is therefore always available.
	Syscon *Syscon

	// PMU is the power management unit handle.
	PMU *PMU

	// LowPowerClock is the PMU's 10 kHz low-power oscillator, disabled at
	// reset.
	LowPowerClock LowPowerClock

	// GPIO is the GPIO port, clock-gated at reset.
	GPIO GPIO

	// UART0 and UART1 are the first two USARTs, clock-gated at reset.
	UART0 UART
	UART1 UART

	// SPI0 and SPI1, clock-gated at reset.
	SPI0 SPI
	SPI1 SPI

	// I2C0, clock-gated at reset.
	I2C0 I2C

	// ACMP is the analog comparator, clock-gated and powered down at reset.
	ACMP ACMP

	// PinInterrupts are the eight pin-interrupt channels, all unbound.
	PinInterrupts [8]PinInterrupt

	// Pins are the movable pins available at reset. Pins PIO0_2, PIO0_3 and
	// PIO0_5 are not here: the SWD and Reset holders own them until
	// released.
	Pins Pins

	// SWD holds PIO0_2 (SWDIO) and PIO0_3 (SWCLK) while the debug port is
	// active.
	SWD SWD

	// Reset holds PIO0_5 while the external reset function is active.
	Reset ExternalReset
}

// Split consumes the Device and produces one handle per peripheral, all in
// their reset state. No register is written; the handles merely mirror the
// hardware's power-on state.
func (d *Device) Split() *Peripherals {
	if d.split {
		panic(badDeviceSplit)
	}
	d.split = true

	bank := newPinBank()
	p := &Peripherals{
		Syscon: &Syscon{hw: sysconReg, mainHz: ircFrequency},
		PMU:    &PMU{hw: pmuReg},
		LowPowerClock: LowPowerClock{
			p: &lowPowerClock{hw: pmuReg},
		},
		GPIO:  GPIO{p: &gpioPeriph{periph: periph{clk: clockGPIO, rst: resetGPIO}, hw: gpioReg, bank: bank}},
		UART0: UART{p: &uartPeriph{periph: periph{clk: clockUART0, rst: resetUART0}, hw: usart0Reg, txd: funcU0TXD, rxd: funcU0RXD}},
		UART1: UART{p: &uartPeriph{periph: periph{clk: clockUART1, rst: resetUART1}, hw: usart1Reg, txd: funcU1TXD, rxd: funcU1RXD}},
		SPI0:  SPI{p: &spiPeriph{periph: periph{clk: clockSPI0, rst: resetSPI0}, hw: spi0Reg, sck: funcSPI0SCK, mosi: funcSPI0MOSI, miso: funcSPI0MISO}},
		SPI1:  SPI{p: &spiPeriph{periph: periph{clk: clockSPI1, rst: resetSPI1}, hw: spi1Reg, sck: funcSPI1SCK, mosi: funcSPI1MOSI, miso: funcSPI1MISO}},
		I2C0:  I2C{p: &i2cPeriph{periph: periph{clk: clockI2C, rst: resetI2C}, hw: i2cReg, scl: funcI2CSCL, sda: funcI2CSDA}},
		ACMP:  ACMP{p: &acmpPeriph{periph: periph{clk: clockACMP, rst: resetACMP}, hw: acmpReg}},
		SWD:   SWD{bank: bank},
		Reset: ExternalReset{bank: bank},
	}
	for i := range p.PinInterrupts {
		p.PinInterrupts[i] = PinInterrupt{p: &pinintChannel{hw: pinintReg, syscon: sysconReg, index: uint8(i)}}
	}
	p.Pins = newPins(bank)
	return p
}

// periphState tracks where a peripheral is in its lifecycle. Handles check
// it on every transition so that a stale (already consumed) handle cannot be
// replayed.
type periphState uint8

const (
	stateReset periphState = iota
	stateClocked
	stateConfigured
)

type periph struct {
	state periphState
	clk   clockID
	rst   resetID
}

func (p *periph) transition(from, to periphState) {
	if p.state != from {
		panic(badHandleReuse)
	}
	p.state = to
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) UnLock() {}
