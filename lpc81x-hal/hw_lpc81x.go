//go:build tinygo

package lpc81x

import "unsafe"

// Peripheral base addresses (UM10601 chapter 2).
const (
	pmuBase    = 0x40020000
	acmpBase   = 0x40024000
	sysconBase = 0x40048000
	i2cBase    = 0x40050000
	spi0Base   = 0x40058000
	spi1Base   = 0x4005C000
	usart0Base = 0x40064000
	usart1Base = 0x40068000
	swmBase    = 0x4000C000
	gpioBase   = 0xA0000000
	pinintBase = 0xA0004000
)

var (
	sysconReg = (*sysconHW)(unsafe.Pointer(uintptr(sysconBase)))
	swmReg    = (*swmHW)(unsafe.Pointer(uintptr(swmBase)))
	gpioReg   = (*gpioHW)(unsafe.Pointer(uintptr(gpioBase)))
	usart0Reg = (*usartHW)(unsafe.Pointer(uintptr(usart0Base)))
	usart1Reg = (*usartHW)(unsafe.Pointer(uintptr(usart1Base)))
	spi0Reg   = (*spiHW)(unsafe.Pointer(uintptr(spi0Base)))
	spi1Reg   = (*spiHW)(unsafe.Pointer(uintptr(spi1Base)))
	i2cReg    = (*i2cHW)(unsafe.Pointer(uintptr(i2cBase)))
	pmuReg    = (*pmuHW)(unsafe.Pointer(uintptr(pmuBase)))
	acmpReg   = (*acmpHW)(unsafe.Pointer(uintptr(acmpBase)))
	pinintReg = (*pinintHW)(unsafe.Pointer(uintptr(pinintBase)))
)
