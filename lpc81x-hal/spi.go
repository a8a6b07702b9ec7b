package lpc81x

import "tinygo.org/x/drivers"

const badSPIConfig = "lpc81x: invalid SPI configuration"

// SPIConfig carries the bus parameters for SPIClocked.Configure.
type SPIConfig struct {
	// Frequency is the target SCK rate in hertz. The achievable rate is the
	// main clock divided by an integer in 1..65536; the divider is rounded
	// up so the bus never runs faster than requested.
	Frequency uint32

	// Mode is the usual SPI mode number 0..3 encoding clock polarity and
	// phase.
	Mode uint8

	// LSBFirst transmits bytes least significant bit first.
	LSBFirst bool
}

// SPI is an SPI controller with its clock gated, the state it is in at
// reset.
type SPI struct {
	p *spiPeriph
}

type spiPeriph struct {
	periph
	hw              *spiHW
	sck, mosi, miso movableFunc
}

// EnableClock ungates the controller's clock, takes it out of reset and
// consumes the handle.
func (s SPI) EnableClock(sc *Syscon) SPIClocked {
	s.p.transition(stateReset, stateClocked)
	sc.enableClock(s.p.clk)
	sc.clearReset(s.p.rst)
	return SPIClocked{p: s.p}
}

// SPIClocked is a clocked but unconfigured SPI controller.
type SPIClocked struct {
	p *spiPeriph
}

// DisableClock gates the controller's clock again and consumes the handle.
func (s SPIClocked) DisableClock(sc *Syscon) SPI {
	s.p.transition(stateClocked, stateReset)
	sc.disableClock(s.p.clk)
	return SPI{p: s.p}
}

// Configure puts the controller in host mode, routes SCK, MOSI and MISO
// onto the given pins and consumes the handle. Chip select is not routed;
// drive it from a GPIO output.
//
// A mode outside 0..3 or a zero frequency is a programming error and
// panics.
func (s SPIClocked) Configure(sc *Syscon, cfg SPIConfig, sck, mosi, miso Pin) SPIHost {
	if cfg.Mode > 3 || cfg.Frequency == 0 {
		panic(badSPIConfig)
	}
	div := spiClockDiv(sc.MainClockFrequency(), cfg.Frequency)

	s.p.transition(stateClocked, stateConfigured)
	sck.bank.assignFunc(sck, s.p.sck)
	mosi.bank.assignFunc(mosi, s.p.mosi)
	miso.bank.assignFunc(miso, s.p.miso)

	c := uint32(spiCFG_ENABLE | spiCFG_MASTER)
	if cfg.Mode&1 != 0 {
		c |= spiCFG_CPHA
	}
	if cfg.Mode&2 != 0 {
		c |= spiCFG_CPOL
	}
	if cfg.LSBFirst {
		c |= spiCFG_LSBF
	}
	hw := s.p.hw
	hw.DIV.Set(div - 1)
	hw.DLY.Set(0)
	hw.CFG.Set(c)

	return SPIHost{p: s.p, sck: sck, mosi: mosi, miso: miso}
}

// spiClockDiv returns the SCK divider for a target frequency, rounded up so
// the result never exceeds the target, clamped to the hardware's 1..65536
// range.
func spiClockDiv(mainclk, freq uint32) uint32 {
	div := (mainclk + freq - 1) / freq
	if div < 1 {
		div = 1
	}
	if div > 65536 {
		div = 65536
	}
	return div
}

// SPIHost is a configured SPI controller in host mode.
type SPIHost struct {
	p               *spiPeriph
	sck, mosi, miso Pin
}

var _ drivers.SPI = (*SPIHost)(nil)

// Transfer shifts out one byte and returns the byte shifted in.
func (h *SPIHost) Transfer(b byte) (byte, error) {
	hw := h.p.hw
	for !hw.STAT.HasBits(spiSTAT_TXRDY) {
	}
	hw.TXDATCTL.Set(uint32(b) | spiTXDATCTL_EOT | 7<<spiTXDATCTL_FLEN_Pos)
	for !hw.STAT.HasBits(spiSTAT_RXRDY) {
	}
	return byte(hw.RXDAT.Get()), nil
}

// Tx shifts out w while filling r. If one slice is shorter the transfer
// continues for the longer one, sending zeroes or dropping reads. The whole
// exchange is one bus transaction; EOT is flagged on the final byte only.
func (h *SPIHost) Tx(w, r []byte) error {
	n := len(w)
	if len(r) > n {
		n = len(r)
	}
	hw := h.p.hw
	for i := 0; i < n; i++ {
		var out uint32 = 7 << spiTXDATCTL_FLEN_Pos
		if i < len(w) {
			out |= uint32(w[i])
		}
		if i == n-1 {
			out |= spiTXDATCTL_EOT
		}
		if i >= len(r) {
			out |= spiTXDATCTL_RXIGNORE
		}
		for !hw.STAT.HasBits(spiSTAT_TXRDY) {
		}
		hw.TXDATCTL.Set(out)
		if i < len(r) {
			for !hw.STAT.HasBits(spiSTAT_RXRDY) {
			}
			r[i] = byte(hw.RXDAT.Get())
		}
	}
	return nil
}

// Release waits for the bus to go idle, disables the controller and hands
// back the clocked handle and the three pins.
func (h *SPIHost) Release() (SPIClocked, Pin, Pin, Pin) {
	h.p.transition(stateConfigured, stateClocked)
	hw := h.p.hw
	for !hw.STAT.HasBits(spiSTAT_MSTIDLE) {
	}
	hw.CFG.ClearBits(spiCFG_ENABLE)
	h.sck.bank.releaseFunc(h.sck)
	h.mosi.bank.releaseFunc(h.mosi)
	h.miso.bank.releaseFunc(h.miso)
	return SPIClocked{p: h.p}, h.sck, h.mosi, h.miso
}
