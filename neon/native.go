package neon

import (
	"os"
	"strconv"
)

// nativeAvailable and nativeName describe whether this process could execute
// the modeled instructions in hardware. Set by init() in native_*.go files.
var (
	nativeAvailable bool
	nativeName      string
)

// Native reports whether the host CPU can execute the modeled instruction
// family natively. A harness can use this to decide whether a hardware
// cross-check of the reference model is possible on this machine.
// Returns false when NEONSIM_NO_NATIVE is set.
func Native() bool {
	if NoNativeEnv() {
		return false
	}
	return nativeAvailable
}

// NativeName returns a human-readable name for the native instruction set,
// or "none" when the host cannot execute the modeled instructions.
func NativeName() string {
	if !Native() {
		return "none"
	}
	return nativeName
}

// NoNativeEnv checks if the NEONSIM_NO_NATIVE environment variable is set.
// When set, Native reports false regardless of CPU capabilities. This is
// useful for forcing the reference path in tests and benchmarks.
func NoNativeEnv() bool {
	val := os.Getenv("NEONSIM_NO_NATIVE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
