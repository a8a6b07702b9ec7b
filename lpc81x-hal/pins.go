package lpc81x

// movableFunc identifies a movable function in the switch matrix. The value
// encodes its slot: PINASSIGN register f/4, byte lane f%4 (UM10601 table
// 108).
type movableFunc uint8

const (
	funcU0TXD movableFunc = iota
	funcU0RXD
	funcU0RTS
	funcU0CTS
	funcU0SCLK
	funcU1TXD
	funcU1RXD
	funcU1RTS
	funcU1CTS
	funcU1SCLK
	funcU2TXD
	funcU2RXD
	funcU2RTS
	funcU2CTS
	funcU2SCLK
	funcSPI0SCK
	funcSPI0MOSI
	funcSPI0MISO
	funcSPI0SSEL
	funcSPI1SCK
	funcSPI1MOSI
	funcSPI1MISO
	funcSPI1SSEL
	funcCTIN0
	funcCTIN1
	funcCTIN2
	funcCTIN3
	funcCTOUT0
	funcCTOUT1
	funcCTOUT2
	funcCTOUT3
	funcI2CSDA
	funcI2CSCL
	funcACMPO
	funcCLKOUT
	funcGPIOINTBMAT
)

// pinAssignNothing is the PINASSIGN byte value that detaches a movable
// function from every pin.
const pinAssignNothing = 0xFF

// Fixed-function enable bits in PINENABLE0, active low (UM10601 table 111).
const (
	fixedACMPI1 = 1 << 0
	fixedACMPI2 = 1 << 1
	fixedSWCLK  = 1 << 2
	fixedSWDIO  = 1 << 3
	fixedRESET  = 1 << 6
)

const (
	badPinClaim   = "lpc81x: pin already in use"
	badPinWatched = "lpc81x: pin still bound to an interrupt channel"
)

// pinState tracks who owns a pin right now.
type pinState uint8

const (
	pinUnassigned pinState = iota
	pinAssigned             // driven by a movable function
	pinGPIOInput
	pinGPIOOutput
	pinAnalog // connected to a fixed analog function
	pinFixed  // held by the SWD or external reset function
)

type pinRecord struct {
	state pinState
	fn    movableFunc

	// watchers counts interrupt channels bound to the pin. A watched pin
	// cannot be released.
	watchers uint8
}

// pinBank is the shared ownership ledger behind every Pin handle. Pin values
// can be copied freely; the record is what gets consumed.
type pinBank struct {
	rec [18]pinRecord
	nc  noCopy
}

func newPinBank() *pinBank {
	b := &pinBank{}
	// SWCLK, SWDIO and RESET come out of reset as fixed functions on pins
	// 3, 2 and 5. The SWD and Reset holders own them until released.
	b.rec[2].state = pinFixed
	b.rec[3].state = pinFixed
	b.rec[5].state = pinFixed
	return b
}

// claim marks a pin owned, panicking if someone owns it already. Every path
// that attaches a function to a pin funnels through here, which is what
// makes double assignment impossible rather than merely discouraged.
func (b *pinBank) claim(p Pin, s pinState) {
	r := &b.rec[p.index]
	if r.state != pinUnassigned {
		panic(badPinClaim)
	}
	r.state = s
}

// assignFunc routes a movable function to a pin through the switch matrix
// and records the pin as taken.
func (b *pinBank) assignFunc(p Pin, f movableFunc) {
	b.claim(p, pinAssigned)
	b.rec[p.index].fn = f
	swmReg.PINASSIGN[f>>2].ReplaceBits(uint32(p.index), 0xFF, 8*(uint8(f)&3))
}

// releaseFunc detaches the movable function recorded on a pin and returns
// the pin to the unassigned pool.
func (b *pinBank) releaseFunc(p Pin) {
	r := &b.rec[p.index]
	if r.state != pinAssigned {
		panic(badHandleReuse)
	}
	f := r.fn
	swmReg.PINASSIGN[f>>2].ReplaceBits(pinAssignNothing, 0xFF, 8*(uint8(f)&3))
	r.state = pinUnassigned
}

// release returns a pin claimed for GPIO or analog use to the unassigned
// pool. from names the state the caller must have put it in.
func (b *pinBank) release(p Pin, from pinState) {
	r := &b.rec[p.index]
	if r.state != from {
		panic(badHandleReuse)
	}
	if r.watchers != 0 {
		panic(badPinWatched)
	}
	r.state = pinUnassigned
}

// Pin is the handle to one package pin in its unassigned state. It carries
// no function; hand it to a peripheral's Configure, to the GPIO port, or to
// an analog conversion method to give it one. The pin comes back when the
// owning function releases it.
type Pin struct {
	bank  *pinBank
	index uint8
}

// ACMP1Pin is PIO0_0, the only pin that can feed the comparator's ACMP_I1
// input. It is an ordinary Pin otherwise.
type ACMP1Pin struct{ Pin }

// ACMP2Pin is PIO0_1, the only pin that can feed the comparator's ACMP_I2
// input.
type ACMP2Pin struct{ Pin }

// Pins holds the handles for every pin that is freely assignable at reset.
// PIO0_2, PIO0_3 and PIO0_5 are absent: the SWD and Reset holders own them.
type Pins struct {
	PIO0_0  ACMP1Pin
	PIO0_1  ACMP2Pin
	PIO0_4  Pin
	PIO0_6  Pin
	PIO0_7  Pin
	PIO0_8  Pin
	PIO0_9  Pin
	PIO0_10 Pin
	PIO0_11 Pin
	PIO0_12 Pin
	PIO0_13 Pin
	PIO0_14 Pin
	PIO0_15 Pin
	PIO0_16 Pin
	PIO0_17 Pin
}

func newPins(b *pinBank) Pins {
	pin := func(i uint8) Pin { return Pin{bank: b, index: i} }
	return Pins{
		PIO0_0:  ACMP1Pin{pin(0)},
		PIO0_1:  ACMP2Pin{pin(1)},
		PIO0_4:  pin(4),
		PIO0_6:  pin(6),
		PIO0_7:  pin(7),
		PIO0_8:  pin(8),
		PIO0_9:  pin(9),
		PIO0_10: pin(10),
		PIO0_11: pin(11),
		PIO0_12: pin(12),
		PIO0_13: pin(13),
		PIO0_14: pin(14),
		PIO0_15: pin(15),
		PIO0_16: pin(16),
		PIO0_17: pin(17),
	}
}

// SWD holds the pins of the serial wire debug port, PIO0_2 (SWDIO) and
// PIO0_3 (SWCLK), which are debug-enabled at reset.
type SWD struct {
	bank *pinBank
}

// ReleasePins disables the debug port's pin functions and hands the two pins
// back for general use. The debugger loses the target when this runs; there
// is no way back short of a chip reset.
func (s *SWD) ReleasePins() (swdio, swclk Pin) {
	b := s.bank
	if b.rec[2].state != pinFixed || b.rec[3].state != pinFixed {
		panic(badHandleReuse)
	}
	swmReg.PINENABLE0.SetBits(fixedSWDIO | fixedSWCLK)
	b.rec[2].state = pinUnassigned
	b.rec[3].state = pinUnassigned
	return Pin{bank: b, index: 2}, Pin{bank: b, index: 3}
}

// ExternalReset holds PIO0_5 while it acts as the external reset input.
type ExternalReset struct {
	bank *pinBank
}

// ReleasePin disables the external reset function and hands PIO0_5 back for
// general use. Afterwards the chip can only be reset by power cycle,
// watchdog or software.
func (r *ExternalReset) ReleasePin() Pin {
	b := r.bank
	if b.rec[5].state != pinFixed {
		panic(badHandleReuse)
	}
	swmReg.PINENABLE0.SetBits(fixedRESET)
	b.rec[5].state = pinUnassigned
	return Pin{bank: b, index: 5}
}
