package main

import (
	"time"

	lpc81x "github.com/tinygo-org/lpc8xx/lpc81x-hal"
)

func main() {
	dev, err := lpc81x.TakeDevice()
	if err != nil {
		panic(err.Error())
	}
	p := dev.Split()

	port := p.GPIO.EnableClock(p.Syscon)
	led := port.Output(p.Pins.PIO0_12, false)

	for {
		led.Toggle()
		time.Sleep(500 * time.Millisecond)
	}
}
