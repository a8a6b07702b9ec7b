package lpc81x

import "errors"

// ErrUnachievableBaudRate is returned by UARTClocked.Configure when no
// divider and fractional multiplier combination gets within 1% of the
// requested baud rate.
var ErrUnachievableBaudRate = errors.New("lpc81x: baud rate not achievable from main clock")

const badUARTConfig = "lpc81x: invalid UART configuration"

// maxBaudErrPPM is the worst acceptable baud rate deviation, 1%.
const maxBaudErrPPM = 10_000

// Parity selects the USART parity mode. The values match the CFG PARITYSEL
// field encoding.
type Parity uint8

const (
	ParityNone Parity = 0
	ParityEven Parity = 2
	ParityOdd  Parity = 3
)

// UARTConfig carries the line parameters for UARTClocked.Configure. Zero
// values for DataBits and StopBits mean 8 data bits and 1 stop bit.
type UARTConfig struct {
	BaudRate uint32
	DataBits uint8 // 7, 8 or 9; 0 means 8
	Parity   Parity
	StopBits uint8 // 1 or 2; 0 means 1
}

// UART is a USART with its clock gated, the state it is in at reset.
type UART struct {
	p *uartPeriph
}

type uartPeriph struct {
	periph
	hw       *usartHW
	txd, rxd movableFunc
}

// EnableClock ungates the USART's clock, takes it out of reset and consumes
// the handle.
func (u UART) EnableClock(sc *Syscon) UARTClocked {
	u.p.transition(stateReset, stateClocked)
	sc.enableClock(u.p.clk)
	sc.clearReset(u.p.rst)
	return UARTClocked{p: u.p}
}

// UARTClocked is a clocked but unconfigured USART.
type UARTClocked struct {
	p *uartPeriph
}

// DisableClock gates the USART's clock again and consumes the handle.
func (u UARTClocked) DisableClock(sc *Syscon) UART {
	u.p.transition(stateClocked, stateReset)
	sc.disableClock(u.p.clk)
	return UART{p: u.p}
}

// Configure sets the line parameters, routes the TXD and RXD functions onto
// the given pins and consumes the handle, yielding the running port.
//
// The baud dividers are solved before anything is consumed: on
// ErrUnachievableBaudRate the handle and both pins remain valid and no
// register has changed. A malformed config (data or stop bits out of range)
// is a programming error and panics.
//
// The fractional rate generator feeding U_PCLK is shared by all USARTs, so
// configuring one USART re-bases the baud rate of any other already running.
func (u UARTClocked) Configure(sc *Syscon, cfg UARTConfig, txd, rxd Pin) (Serial, error) {
	datalen, stoplen := lineFormat(cfg)

	brgp1, mult, ok := solveBaud(sc.MainClockFrequency(), cfg.BaudRate)
	if !ok {
		return Serial{}, ErrUnachievableBaudRate
	}

	u.p.transition(stateClocked, stateConfigured)
	txd.bank.assignFunc(txd, u.p.txd)
	rxd.bank.assignFunc(rxd, u.p.rxd)

	sc.clearReset(resetUARTFRG)
	sc.setUARTClock(1, mult)

	hw := u.p.hw
	hw.BRG.Set(uint32(brgp1 - 1))
	hw.CFG.Set(usartCFG_ENABLE |
		datalen<<usartCFG_DATALEN_Pos |
		uint32(cfg.Parity)<<usartCFG_PARITYSEL_Pos |
		stoplen<<usartCFG_STOPLEN_Pos)

	return Serial{p: u.p, txd: txd, rxd: rxd}, nil
}

func lineFormat(cfg UARTConfig) (datalen, stoplen uint32) {
	switch cfg.DataBits {
	case 0, 8:
		datalen = 1
	case 7:
		datalen = 0
	case 9:
		datalen = 2
	default:
		panic(badUARTConfig)
	}
	switch cfg.StopBits {
	case 0, 1:
		stoplen = 0
	case 2:
		stoplen = 1
	default:
		panic(badUARTConfig)
	}
	if cfg.Parity != ParityNone && cfg.Parity != ParityEven && cfg.Parity != ParityOdd {
		panic(badUARTConfig)
	}
	return datalen, stoplen
}

// solveBaud finds the baud generator divider and fractional multiplier that
// best approximate the requested rate. With UARTCLKDIV fixed at 1 and
// UARTFRGDIV at 0xFF,
//
//	baud = 16 * mainclk / ((256 + mult) * brgp1)
//
// It scans all 256 multiplier values, rounds the divider for each and keeps
// the combination with the smallest relative error. ok is false if the best
// error exceeds 1% or no divider lands in 1..65536.
func solveBaud(mainclk, baud uint32) (brgp1 uint32, mult uint8, ok bool) {
	if baud == 0 {
		return 0, 0, false
	}
	best := uint64(maxBaudErrPPM) + 1
	num := uint64(mainclk) * 16
	for m := uint64(0); m <= 255; m++ {
		den := (256 + m) * uint64(baud)
		d := (num + den/2) / den
		if d < 1 || d > 65536 {
			continue
		}
		// err = |actual - baud| / baud in PPM, with actual = num/((256+m)*d).
		actualDen := (256 + m) * d
		prod := uint64(baud) * actualDen
		diff := num - prod
		if prod > num {
			diff = prod - num
		}
		errPPM := diff * 1_000_000 / prod
		if errPPM < best {
			best = errPPM
			brgp1 = uint32(d)
			mult = uint8(m)
		}
	}
	return brgp1, mult, best <= maxBaudErrPPM
}

// Serial is a configured, running USART.
type Serial struct {
	p        *uartPeriph
	txd, rxd Pin
}

// WriteByte blocks until the transmitter can accept a byte, then queues it.
func (s *Serial) WriteByte(b byte) error {
	for !s.p.hw.STAT.HasBits(usartSTAT_TXRDY) {
	}
	s.p.hw.TXDAT.Set(uint32(b))
	return nil
}

// Write sends the whole buffer, blocking as needed. It implements io.Writer
// and never returns an error.
func (s *Serial) Write(p []byte) (int, error) {
	for _, b := range p {
		s.WriteByte(b)
	}
	return len(p), nil
}

// Buffered reports whether a received byte is waiting.
func (s *Serial) Buffered() bool {
	return s.p.hw.STAT.HasBits(usartSTAT_RXRDY)
}

// ReadByte blocks until a byte arrives and returns it.
func (s *Serial) ReadByte() (byte, error) {
	for !s.Buffered() {
	}
	return byte(s.p.hw.RXDAT.Get()), nil
}

// Flush blocks until the transmitter has pushed out every queued bit.
func (s *Serial) Flush() {
	for !s.p.hw.STAT.HasBits(usartSTAT_TXIDLE) {
	}
}

// Release drains the transmitter, disables the USART and hands back the
// clocked handle and both pins.
func (s *Serial) Release() (UARTClocked, Pin, Pin) {
	s.p.transition(stateConfigured, stateClocked)
	s.Flush()
	s.p.hw.CFG.ClearBits(usartCFG_ENABLE)
	s.txd.bank.releaseFunc(s.txd)
	s.rxd.bank.releaseFunc(s.rxd)
	return UARTClocked{p: s.p}, s.txd, s.rxd
}
