//go:build !arm64

package neon

func init() {
	// Other architectures cannot execute the modeled instructions;
	// the scalar model is the only path.
	nativeAvailable = false
	nativeName = "none"
}
