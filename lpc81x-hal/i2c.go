package lpc81x

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	// ErrI2CAddressNack means no device acknowledged the address.
	ErrI2CAddressNack = errors.New("lpc81x: i2c address not acknowledged")

	// ErrI2CDataNack means the device refused a data byte mid-transfer.
	ErrI2CDataNack = errors.New("lpc81x: i2c data not acknowledged")

	// ErrI2CBusFault means the master state machine reported a state the
	// transfer sequence cannot have produced, typically after arbitration
	// loss or a stuck bus.
	ErrI2CBusFault = errors.New("lpc81x: i2c bus fault")
)

const badI2CConfig = "lpc81x: invalid I2C configuration"

// I2CConfig carries the bus parameters for I2CClocked.Configure.
type I2CConfig struct {
	// Frequency is the target SCL rate in hertz. Zero means standard-mode
	// 100 kHz.
	Frequency uint32
}

// I2C is the I2C controller with its clock gated, the state it is in at
// reset.
type I2C struct {
	p *i2cPeriph
}

type i2cPeriph struct {
	periph
	hw       *i2cHW
	scl, sda movableFunc
}

// EnableClock ungates the controller's clock, takes it out of reset and
// consumes the handle.
func (i I2C) EnableClock(sc *Syscon) I2CClocked {
	i.p.transition(stateReset, stateClocked)
	sc.enableClock(i.p.clk)
	sc.clearReset(i.p.rst)
	return I2CClocked{p: i.p}
}

// I2CClocked is a clocked but unconfigured I2C controller.
type I2CClocked struct {
	p *i2cPeriph
}

// DisableClock gates the controller's clock again and consumes the handle.
func (i I2CClocked) DisableClock(sc *Syscon) I2C {
	i.p.transition(stateClocked, stateReset)
	sc.disableClock(i.p.clk)
	return I2C{p: i.p}
}

// Configure enables the master function, routes SCL and SDA onto the given
// pins and consumes the handle.
//
// The LPC81x routes I2C as movable functions, so any pins work, but only
// PIO0_10 and PIO0_11 have true open-drain drivers; other pins limit the
// bus to a single master and modest speeds.
func (i I2CClocked) Configure(sc *Syscon, cfg I2CConfig, scl, sda Pin) I2CMaster {
	freq := cfg.Frequency
	if freq == 0 {
		freq = 100_000
	}
	div := sc.MainClockFrequency() / (4 * freq)
	if div < 1 {
		panic(badI2CConfig)
	}

	i.p.transition(stateClocked, stateConfigured)
	scl.bank.assignFunc(scl, i.p.scl)
	sda.bank.assignFunc(sda, i.p.sda)

	hw := i.p.hw
	hw.CLKDIV.Set(div - 1)
	// SCL low and high each stretch two function clocks, giving the 4x
	// factor in the divider above.
	hw.MSTTIME.Set(0)
	hw.CFG.Set(i2cCFG_MSTEN)

	return I2CMaster{p: i.p, scl: scl, sda: sda}
}

// I2CMaster is a configured I2C controller in master mode. Transfers are
// blocking and polled; the controller clock-stretches between bytes while
// the CPU catches up.
type I2CMaster struct {
	p        *i2cPeriph
	scl, sda Pin
}

var _ drivers.I2C = (*I2CMaster)(nil)

func (m *I2CMaster) waitPending() uint32 {
	hw := m.p.hw
	for !hw.STAT.HasBits(i2cSTAT_MSTPENDING) {
	}
	return hw.STAT.Get() >> i2cSTAT_MSTSTATE_Pos & i2cSTAT_MSTSTATE_Msk
}

// Tx performs one bus transaction with the 7-bit device address addr: it
// writes w, then reads len(r) bytes after a repeated start, then issues a
// stop. Either slice may be empty. A nack aborts the transaction with a
// stop and returns the matching error.
func (m *I2CMaster) Tx(addr uint16, w, r []byte) error {
	hw := m.p.hw
	if len(w) > 0 || len(r) == 0 {
		// Even an empty write addresses the device, so a transfer with both
		// slices empty still probes for an ack.
		if m.waitPending() != i2cMSTSTATE_IDLE {
			return m.abort(ErrI2CBusFault)
		}
		hw.MSTDAT.Set(uint32(addr) << 1)
		hw.MSTCTL.Set(i2cMSTCTL_MSTSTART)
		for _, b := range w {
			if err := m.checkWriteReady(); err != nil {
				return err
			}
			hw.MSTDAT.Set(uint32(b))
			hw.MSTCTL.Set(i2cMSTCTL_MSTCONTINUE)
		}
		if err := m.checkWriteReady(); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		hw.MSTDAT.Set(uint32(addr)<<1 | 1)
		hw.MSTCTL.Set(i2cMSTCTL_MSTSTART)
		for n := range r {
			switch m.waitPending() {
			case i2cMSTSTATE_RXREADY:
			case i2cMSTSTATE_NACKADR:
				return m.abort(ErrI2CAddressNack)
			default:
				return m.abort(ErrI2CBusFault)
			}
			r[n] = byte(hw.MSTDAT.Get())
			if n == len(r)-1 {
				hw.MSTCTL.Set(i2cMSTCTL_MSTSTOP)
			} else {
				hw.MSTCTL.Set(i2cMSTCTL_MSTCONTINUE)
			}
		}
	} else {
		hw.MSTCTL.Set(i2cMSTCTL_MSTSTOP)
	}
	m.waitPending()
	return nil
}

// checkWriteReady waits for the master to go pending after an address or
// data byte in the write direction and maps a nack to its error.
func (m *I2CMaster) checkWriteReady() error {
	switch m.waitPending() {
	case i2cMSTSTATE_TXREADY:
		return nil
	case i2cMSTSTATE_NACKADR:
		return m.abort(ErrI2CAddressNack)
	case i2cMSTSTATE_NACKDAT:
		return m.abort(ErrI2CDataNack)
	default:
		return m.abort(ErrI2CBusFault)
	}
}

func (m *I2CMaster) abort(err error) error {
	m.p.hw.MSTCTL.Set(i2cMSTCTL_MSTSTOP)
	m.waitPending()
	return err
}

// Release disables the master function and hands back the clocked handle
// and both pins.
func (m *I2CMaster) Release() (I2CClocked, Pin, Pin) {
	m.p.transition(stateConfigured, stateClocked)
	m.p.hw.CFG.ClearBits(i2cCFG_MSTEN)
	m.scl.bank.releaseFunc(m.scl)
	m.sda.bank.releaseFunc(m.sda)
	return I2CClocked{p: m.p}, m.scl, m.sda
}
