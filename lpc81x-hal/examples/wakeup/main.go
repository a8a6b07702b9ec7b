package main

import (
	lpc81x "github.com/tinygo-org/lpc8xx/lpc81x-hal"
)

// Deep-sleeps until a falling edge on PIO0_12 and toggles the LED on
// PIO0_13 for every wakeup. The NVIC line for pin interrupt channel 0 must
// be enabled by the runtime for the wakeup to fire.
func main() {
	dev, err := lpc81x.TakeDevice()
	if err != nil {
		panic(err.Error())
	}
	p := dev.Split()

	port := p.GPIO.EnableClock(p.Syscon)
	button := port.Input(p.Pins.PIO0_12)
	led := port.Output(p.Pins.PIO0_13, false)

	edge := p.PinInterrupts[0].OnEdge(&button, false, true)
	for {
		p.PMU.DeepSleep()
		edge.Acknowledge()
		led.Toggle()
	}
}
