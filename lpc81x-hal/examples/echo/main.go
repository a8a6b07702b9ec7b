package main

import (
	lpc81x "github.com/tinygo-org/lpc8xx/lpc81x-hal"
)

// Echoes every byte received on USART0 at 115200 baud, TXD on PIO0_4 and
// RXD on PIO0_0.
func main() {
	dev, err := lpc81x.TakeDevice()
	if err != nil {
		panic(err.Error())
	}
	p := dev.Split()
	sc := p.Syscon

	serial, err := p.UART0.EnableClock(sc).Configure(sc, lpc81x.UARTConfig{
		BaudRate: 115200,
	}, p.Pins.PIO0_4, p.Pins.PIO0_0.Pin)
	if err != nil {
		panic(err.Error())
	}

	serial.Write([]byte("echo ready\r\n"))
	for {
		b, _ := serial.ReadByte()
		serial.WriteByte(b)
	}
}
