//go:build !tinygo

package lpc81x

// In-memory register blocks for host builds. Tests drive the HAL against
// these and inspect the bits it wrote.
var (
	sysconReg = &sysconHW{}
	swmReg    = &swmHW{}
	gpioReg   = &gpioHW{}
	usart0Reg = &usartHW{}
	usart1Reg = &usartHW{}
	spi0Reg   = &spiHW{}
	spi1Reg   = &spiHW{}
	i2cReg    = &i2cHW{}
	pmuReg    = &pmuHW{}
	acmpReg   = &acmpHW{}
	pinintReg = &pinintHW{}
)

// resetHW restores the register blocks and the device singleton to their
// power-on state. Ready flags that the silicon holds high when idle (USART
// TXRDY, SPI TXRDY, I2C MSTPENDING) are preset so that polling loops
// terminate on the host.
func resetHW() {
	*sysconReg = sysconHW{}
	// Core, memory and switch matrix clocks running; every peripheral the
	// HAL hands out starts gated, matching the handles Split produces.
	sysconReg.SYSAHBCLKCTRL.Set(0x0000009F)
	sysconReg.PDRUNCFG.Set(0x0000EDF8)

	*swmReg = swmHW{}
	for i := range swmReg.PINASSIGN {
		swmReg.PINASSIGN[i].Set(0xFFFFFFFF)
	}
	swmReg.PINENABLE0.Set(0xFFFFFFB3)

	*gpioReg = gpioHW{}

	for _, u := range []*usartHW{usart0Reg, usart1Reg} {
		*u = usartHW{}
		u.STAT.Set(usartSTAT_TXRDY | usartSTAT_TXIDLE | usartSTAT_RXIDLE)
	}
	for _, s := range []*spiHW{spi0Reg, spi1Reg} {
		*s = spiHW{}
		s.STAT.Set(spiSTAT_TXRDY | spiSTAT_MSTIDLE)
	}

	*i2cReg = i2cHW{}
	i2cReg.STAT.Set(i2cSTAT_MSTPENDING)

	*pmuReg = pmuHW{}
	*acmpReg = acmpHW{}
	*pinintReg = pinintHW{}

	deviceTaken = false
}
