//go:build !tinygo

package lpc81x

// On the host there is no interrupt to wait for; the sleep modes reduce to
// programming PCON, which the tests inspect.
func waitForInterrupt(deep bool) {}
