package lpc81x

// PMU is the handle to the power management unit. Like SYSCON it is always
// clocked and Device.Split hands it out permanently available.
type PMU struct {
	hw *pmuHW
	nc noCopy
}

// Sleep stops the CPU clock until the next enabled interrupt. Peripherals
// and memory stay powered; wakeup is immediate.
func (p *PMU) Sleep() {
	p.hw.PCON.ReplaceBits(pmuPCON_PM_DEFAULT, pmuPCON_PM_Msk, 0)
	waitForInterrupt(false)
}

// DeepSleep stops the system clock and the analog blocks listed in
// PDSLEEPCFG. Only a pin interrupt, the watchdog or the wakeup timer can end
// it, and only if its line was marked as a wakeup source in STARTERP1
// beforehand.
func (p *PMU) DeepSleep() {
	p.hw.PCON.ReplaceBits(pmuPCON_PM_DEEPSLEEP, pmuPCON_PM_Msk, 0)
	waitForInterrupt(true)
}

// PowerDown is DeepSleep with the flash powered off as well. Wakeup takes
// longer because the flash must restart first.
func (p *PMU) PowerDown() {
	p.hw.PCON.ReplaceBits(pmuPCON_PM_POWERDOWN, pmuPCON_PM_Msk, 0)
	waitForInterrupt(true)
}

// LowPowerClock is the PMU's 10 kHz low-power oscillator in its disabled
// reset state. It keeps the self-wakeup timer running through the deep
// power-down modes.
type LowPowerClock struct {
	p *lowPowerClock
}

type lowPowerClock struct {
	hw    *pmuHW
	state periphState
}

// Enable starts the oscillator and consumes the handle.
func (c LowPowerClock) Enable() LowPowerClockEnabled {
	if c.p.state != stateReset {
		panic(badHandleReuse)
	}
	c.p.state = stateClocked
	c.p.hw.DPDCTRL.SetBits(pmuDPDCTRL_LPOSCEN)
	return LowPowerClockEnabled{p: c.p}
}

// LowPowerClockEnabled is the running 10 kHz oscillator.
type LowPowerClockEnabled struct {
	p *lowPowerClock
}

// Hz returns the oscillator's nominal rate. The silicon only guarantees it
// within +/-40% over voltage and temperature, so do not derive baud rates
// from it.
func (LowPowerClockEnabled) Hz() uint32 { return 10_000 }

// Disable stops the oscillator and consumes the handle.
func (c LowPowerClockEnabled) Disable() LowPowerClock {
	if c.p.state != stateClocked {
		panic(badHandleReuse)
	}
	c.p.state = stateReset
	c.p.hw.DPDCTRL.ClearBits(pmuDPDCTRL_LPOSCEN)
	return LowPowerClock{p: c.p}
}
