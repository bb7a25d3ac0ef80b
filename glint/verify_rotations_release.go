//go:build !verify_rotations
// +build !verify_rotations

package glint

// Empty stub that will be optimized out
func verifyRotation(r RotationMatrix) {
	// Empty function will be entirely optimized out in release builds
}
