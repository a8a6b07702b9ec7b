package lpc81x

import (
	"unsafe"

	"github.com/tinygo-org/lpc8xx/lpc81x-hal/volatile"
)

// Register layouts for the LPC81x peripherals used by this HAL, from the
// UM10601 user manual. TinyGo ships no device package for this family, so
// the blocks are written out by hand.

// System configuration block (UM10601 chapter 4).
type sysconHW struct {
	SYSMEMREMAP   volatile.Register32      // 0x000
	PRESETCTRL    volatile.Register32      // 0x004
	SYSPLLCTRL    volatile.Register32      // 0x008
	SYSPLLSTAT    volatile.Register32      // 0x00C
	_             [4]volatile.Register32   // 0x010..0x01C
	SYSOSCCTRL    volatile.Register32      // 0x020
	WDTOSCCTRL    volatile.Register32      // 0x024
	_             [2]volatile.Register32   // 0x028..0x02C
	SYSRSTSTAT    volatile.Register32      // 0x030
	_             [3]volatile.Register32   // 0x034..0x03C
	SYSPLLCLKSEL  volatile.Register32      // 0x040
	SYSPLLCLKUEN  volatile.Register32      // 0x044
	_             [10]volatile.Register32  // 0x048..0x06C
	MAINCLKSEL    volatile.Register32      // 0x070
	MAINCLKUEN    volatile.Register32      // 0x074
	SYSAHBCLKDIV  volatile.Register32      // 0x078
	_             volatile.Register32      // 0x07C
	SYSAHBCLKCTRL volatile.Register32      // 0x080
	_             [4]volatile.Register32   // 0x084..0x090
	UARTCLKDIV    volatile.Register32      // 0x094
	_             [18]volatile.Register32  // 0x098..0x0DC
	CLKOUTSEL     volatile.Register32      // 0x0E0
	CLKOUTUEN     volatile.Register32      // 0x0E4
	CLKOUTDIV     volatile.Register32      // 0x0E8
	_             volatile.Register32      // 0x0EC
	UARTFRGDIV    volatile.Register32      // 0x0F0
	UARTFRGMULT   volatile.Register32      // 0x0F4
	_             [2]volatile.Register32   // 0x0F8..0x0FC
	EXTTRACECMD   volatile.Register32      // 0x100
	PIOPORCAP0    volatile.Register32      // 0x104
	_             [18]volatile.Register32  // 0x108..0x14C
	BODCTRL       volatile.Register32      // 0x150
	SYSTCKCAL     volatile.Register32      // 0x154
	_             [6]volatile.Register32   // 0x158..0x16C
	IRQLATENCY    volatile.Register32      // 0x170
	NMISRC        volatile.Register32      // 0x174
	PINTSEL       [8]volatile.Register32   // 0x178..0x194
	_             [27]volatile.Register32  // 0x198..0x200
	STARTERP0     volatile.Register32      // 0x204
	_             [3]volatile.Register32   // 0x208..0x210
	STARTERP1     volatile.Register32      // 0x214
	_             [6]volatile.Register32   // 0x218..0x22C
	PDSLEEPCFG    volatile.Register32      // 0x230
	PDAWAKECFG    volatile.Register32      // 0x234
	PDRUNCFG      volatile.Register32      // 0x238
	_             [111]volatile.Register32 // 0x23C..0x3F4
	DEVICE_ID     volatile.Register32      // 0x3F8
}

// Switch matrix block (UM10601 chapter 9). PINASSIGN holds one movable
// function per byte; PINENABLE0 holds one active-low enable per fixed
// function.
type swmHW struct {
	PINASSIGN  [9]volatile.Register32   // 0x000..0x020
	_          [103]volatile.Register32 // 0x024..0x1BC
	PINENABLE0 volatile.Register32      // 0x1C0
}

// GPIO port block (UM10601 chapter 7).
type gpioHW struct {
	B     [18]volatile.Register8  // 0x0000..0x0011, byte access per pin
	_     [4078]byte              // ..0x0FFC
	W     [18]volatile.Register32 // 0x1000..0x1044, word access per pin
	_     [1006]volatile.Register32
	DIR0  volatile.Register32 // 0x2000
	_     [31]volatile.Register32
	MASK0 volatile.Register32 // 0x2080
	_     [31]volatile.Register32
	PIN0  volatile.Register32 // 0x2100
	_     [31]volatile.Register32
	MPIN0 volatile.Register32 // 0x2180
	_     [31]volatile.Register32
	SET0  volatile.Register32 // 0x2200
	_     [31]volatile.Register32
	CLR0  volatile.Register32 // 0x2280
	_     [31]volatile.Register32
	NOT0  volatile.Register32 // 0x2300
}

// USART block (UM10601 chapter 13).
type usartHW struct {
	CFG       volatile.Register32 // 0x00
	CTL       volatile.Register32 // 0x04
	STAT      volatile.Register32 // 0x08
	INTENSET  volatile.Register32 // 0x0C
	INTENCLR  volatile.Register32 // 0x10
	RXDAT     volatile.Register32 // 0x14
	RXDATSTAT volatile.Register32 // 0x18
	TXDAT     volatile.Register32 // 0x1C
	BRG       volatile.Register32 // 0x20
	INTSTAT   volatile.Register32 // 0x24
}

// SPI block (UM10601 chapter 14).
type spiHW struct {
	CFG      volatile.Register32 // 0x00
	DLY      volatile.Register32 // 0x04
	STAT     volatile.Register32 // 0x08
	INTENSET volatile.Register32 // 0x0C
	INTENCLR volatile.Register32 // 0x10
	RXDAT    volatile.Register32 // 0x14
	TXDATCTL volatile.Register32 // 0x18
	TXDAT    volatile.Register32 // 0x1C
	TXCTL    volatile.Register32 // 0x20
	DIV      volatile.Register32 // 0x24
	INTSTAT  volatile.Register32 // 0x28
}

// I2C block (UM10601 chapter 15). Only the master-function registers are
// modeled.
type i2cHW struct {
	CFG      volatile.Register32 // 0x00
	STAT     volatile.Register32 // 0x04
	INTENSET volatile.Register32 // 0x08
	INTENCLR volatile.Register32 // 0x0C
	TIMEOUT  volatile.Register32 // 0x10
	CLKDIV   volatile.Register32 // 0x14
	INTSTAT  volatile.Register32 // 0x18
	_        volatile.Register32 // 0x1C
	MSTCTL   volatile.Register32 // 0x20
	MSTTIME  volatile.Register32 // 0x24
	MSTDAT   volatile.Register32 // 0x28
}

// Power management unit block (UM10601 chapter 5).
type pmuHW struct {
	PCON    volatile.Register32    // 0x00
	GPREG   [4]volatile.Register32 // 0x04..0x10
	DPDCTRL volatile.Register32    // 0x14
}

// Analog comparator block (UM10601 chapter 18).
type acmpHW struct {
	CTRL volatile.Register32 // 0x00
	LAD  volatile.Register32 // 0x04
}

// Pin interrupt block (UM10601 chapter 8).
type pinintHW struct {
	ISEL  volatile.Register32 // 0x00
	IENR  volatile.Register32 // 0x04
	SIENR volatile.Register32 // 0x08
	CIENR volatile.Register32 // 0x0C
	IENF  volatile.Register32 // 0x10
	SIENF volatile.Register32 // 0x14
	CIENF volatile.Register32 // 0x18
	RISE  volatile.Register32 // 0x1C
	FALL  volatile.Register32 // 0x20
	IST   volatile.Register32 // 0x24
}

// Layout guards. A wrong filler count makes one of these array lengths
// negative and the package stops compiling. The arrays are zero length and
// cost nothing.
var (
	_ [unsafe.Sizeof(sysconHW{}) - 0x3FC]byte
	_ [0x3FC - unsafe.Sizeof(sysconHW{})]byte
	_ [unsafe.Sizeof(swmHW{}) - 0x1C4]byte
	_ [0x1C4 - unsafe.Sizeof(swmHW{})]byte
	_ [unsafe.Sizeof(gpioHW{}) - 0x2304]byte
	_ [0x2304 - unsafe.Sizeof(gpioHW{})]byte
	_ [unsafe.Sizeof(usartHW{}) - 0x28]byte
	_ [0x28 - unsafe.Sizeof(usartHW{})]byte
	_ [unsafe.Sizeof(spiHW{}) - 0x2C]byte
	_ [0x2C - unsafe.Sizeof(spiHW{})]byte
	_ [unsafe.Sizeof(i2cHW{}) - 0x2C]byte
	_ [0x2C - unsafe.Sizeof(i2cHW{})]byte
	_ [unsafe.Sizeof(pmuHW{}) - 0x18]byte
	_ [0x18 - unsafe.Sizeof(pmuHW{})]byte
)

// USART CFG bits.
const (
	usartCFG_ENABLE        = 1 << 0
	usartCFG_DATALEN_Pos   = 2
	usartCFG_DATALEN_Msk   = 0x3
	usartCFG_PARITYSEL_Pos = 4
	usartCFG_PARITYSEL_Msk = 0x3
	usartCFG_STOPLEN_Pos   = 6
)

// USART STAT bits.
const (
	usartSTAT_RXRDY  = 1 << 0
	usartSTAT_RXIDLE = 1 << 1
	usartSTAT_TXRDY  = 1 << 2
	usartSTAT_TXIDLE = 1 << 3
)

// SPI CFG bits.
const (
	spiCFG_ENABLE = 1 << 0
	spiCFG_MASTER = 1 << 2
	spiCFG_LSBF   = 1 << 3
	spiCFG_CPHA   = 1 << 4
	spiCFG_CPOL   = 1 << 5
	spiCFG_SPOL   = 1 << 8
)

// SPI STAT bits.
const (
	spiSTAT_RXRDY   = 1 << 0
	spiSTAT_TXRDY   = 1 << 1
	spiSTAT_MSTIDLE = 1 << 8
)

// SPI TXDATCTL bits.
const (
	spiTXDATCTL_EOT      = 1 << 20
	spiTXDATCTL_RXIGNORE = 1 << 22
	spiTXDATCTL_FLEN_Pos = 24
)

// I2C CFG/STAT/MSTCTL bits.
const (
	i2cCFG_MSTEN = 1 << 0

	i2cSTAT_MSTPENDING   = 1 << 0
	i2cSTAT_MSTSTATE_Pos = 1
	i2cSTAT_MSTSTATE_Msk = 0x7

	i2cMSTSTATE_IDLE    = 0
	i2cMSTSTATE_RXREADY = 1
	i2cMSTSTATE_TXREADY = 2
	i2cMSTSTATE_NACKADR = 3
	i2cMSTSTATE_NACKDAT = 4

	i2cMSTCTL_MSTCONTINUE = 1 << 0
	i2cMSTCTL_MSTSTART    = 1 << 1
	i2cMSTCTL_MSTSTOP     = 1 << 2
)

// PMU PCON power modes and DPDCTRL bits.
const (
	pmuPCON_PM_Msk       = 0x7
	pmuPCON_PM_DEFAULT   = 0x0
	pmuPCON_PM_DEEPSLEEP = 0x1
	pmuPCON_PM_POWERDOWN = 0x2

	pmuDPDCTRL_LPOSCEN = 1 << 2
)

// ACMP CTRL fields.
const (
	acmpCTRL_COMP_VP_SEL_Pos = 8
	acmpCTRL_COMP_VM_SEL_Pos = 11
	acmpCTRL_COMP_SEL_Msk    = 0x7
	acmpCTRL_COMPSTAT        = 1 << 21
)
