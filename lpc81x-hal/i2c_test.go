//go:build !tinygo

package lpc81x

import "testing"

func newI2CMaster(t *testing.T, p *Peripherals, cfg I2CConfig) I2CMaster {
	t.Helper()
	return p.I2C0.EnableClock(p.Syscon).Configure(p.Syscon, cfg, p.Pins.PIO0_10, p.Pins.PIO0_11)
}

// setMasterState pins the simulated master function at one MSTSTATE value
// with MSTPENDING held high.
func setMasterState(state uint32) {
	i2cReg.STAT.Set(i2cSTAT_MSTPENDING | state<<i2cSTAT_MSTSTATE_Pos)
}

func TestI2CConfigure(t *testing.T) {
	p := takeSplit(t)
	newI2CMaster(t, p, I2CConfig{})

	if got := i2cReg.CLKDIV.Get(); got != 29 {
		t.Errorf("CLKDIV = %d for 100 kHz at 12 MHz, want 29", got)
	}
	if !i2cReg.CFG.HasBits(i2cCFG_MSTEN) {
		t.Error("CFG MSTEN clear after Configure")
	}
	if got := assignedPin(funcI2CSCL); got != 10 {
		t.Errorf("I2C_SCL routed to %d, want 10", got)
	}
	if got := assignedPin(funcI2CSDA); got != 11 {
		t.Errorf("I2C_SDA routed to %d, want 11", got)
	}
}

func TestI2CConfigureFastMode(t *testing.T) {
	p := takeSplit(t)
	newI2CMaster(t, p, I2CConfig{Frequency: 400_000})

	if got := i2cReg.CLKDIV.Get(); got != 6 {
		t.Errorf("CLKDIV = %d for 400 kHz at 12 MHz, want 6", got)
	}
}

func TestI2CTxRead(t *testing.T) {
	p := takeSplit(t)
	m := newI2CMaster(t, p, I2CConfig{})

	setMasterState(i2cMSTSTATE_RXREADY)
	r := make([]byte, 2)
	if err := m.Tx(0x50, nil, r); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	// The in-memory MSTDAT holds the last value written, the read address.
	if want := byte(0x50<<1 | 1); r[0] != want || r[1] != want {
		t.Errorf("r = %v, want both bytes read back from MSTDAT (%#x)", r, want)
	}
	if !i2cReg.MSTCTL.HasBits(i2cMSTCTL_MSTSTOP) {
		t.Error("Tx did not end the transaction with a stop")
	}
}

func TestI2CAddressNack(t *testing.T) {
	p := takeSplit(t)
	m := newI2CMaster(t, p, I2CConfig{})

	setMasterState(i2cMSTSTATE_NACKADR)
	if err := m.Tx(0x50, nil, make([]byte, 1)); err != ErrI2CAddressNack {
		t.Fatalf("Tx err = %v, want ErrI2CAddressNack", err)
	}
	if !i2cReg.MSTCTL.HasBits(i2cMSTCTL_MSTSTOP) {
		t.Error("nack abort did not issue a stop")
	}
}

func TestI2CStuckBus(t *testing.T) {
	p := takeSplit(t)
	m := newI2CMaster(t, p, I2CConfig{})

	// A master that reports idle after a start never accepted the address.
	setMasterState(i2cMSTSTATE_IDLE)
	if err := m.Tx(0x50, []byte{1}, nil); err != ErrI2CBusFault {
		t.Fatalf("Tx err = %v, want ErrI2CBusFault", err)
	}
}

func TestI2CReleaseRoundTrip(t *testing.T) {
	p := takeSplit(t)
	sc := p.Syscon
	m := newI2CMaster(t, p, I2CConfig{})

	clocked, scl, sda := m.Release()
	if i2cReg.CFG.HasBits(i2cCFG_MSTEN) {
		t.Error("Release left the master function enabled")
	}
	if got := assignedPin(funcI2CSCL); got != pinAssignNothing {
		t.Errorf("I2C_SCL still routed to %d after Release", got)
	}
	clocked.Configure(sc, I2CConfig{}, scl, sda)
	if !i2cReg.CFG.HasBits(i2cCFG_MSTEN) {
		t.Error("reconfigure after Release failed")
	}
}
