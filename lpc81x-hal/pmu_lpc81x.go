//go:build tinygo

package lpc81x

import "device/arm"

// waitForInterrupt executes WFI, optionally arming the deep variants of the
// sleep modes via the Cortex-M SLEEPDEEP bit.
func waitForInterrupt(deep bool) {
	if deep {
		arm.SCB.SCR.SetBits(arm.SCB_SCR_SLEEPDEEP_Msk)
	} else {
		arm.SCB.SCR.ClearBits(arm.SCB_SCR_SLEEPDEEP_Msk)
	}
	arm.Asm("wfi")
}
