//go:build verify_rotations
// +build verify_rotations

package glint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	orthogonalityEpsilon = 1e-9
	determinantEpsilon   = 1e-9
)

func init() {
	fmt.Println("Rotation verification enabled.")
}

func verifyRotation(r RotationMatrix) {
	// 1. RᵀR should be the identity
	var p mat.Dense
	p.Mul(r.m.T(), r.m)
	if !mat.EqualApprox(&p, Identity().m, orthogonalityEpsilon) {
		panic(fmt.Sprintf("rotation is not orthogonal:\n%v", r))
	}

	// 2. A proper rotation keeps handedness
	if math.Abs(r.Det()-1) > determinantEpsilon {
		panic(fmt.Sprintf("rotation determinant is %v, want 1", r.Det()))
	}
}
