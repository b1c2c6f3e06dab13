//go:build arm64

package neon

import "golang.org/x/sys/cpu"

func init() {
	// AArch64 always has NEON (ASIMD) as part of the ARMv8-A base
	// architecture. The cpu package check keeps the probe honest on
	// unusual runtimes.
	nativeAvailable = cpu.ARM64.HasASIMD
	nativeName = "neon"
}
