package glint

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/mat"
)

// Axis selects the fixed axis of an elementary rotation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if !a.valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis accepts "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, error) {
	for i, name := range axisNames {
		if strings.EqualFold(s, name) {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("axis must be 'x', 'y', or 'z', got %q: %w", s, ErrInvalidArgument)
}

// RotationMatrix is a 3x3 orthogonal matrix. Every constructor in this
// package builds it from elementary rotations, so its transpose is its inverse.
type RotationMatrix struct {
	m *mat.Dense
}

// Identity returns the identity rotation.
func Identity() RotationMatrix {
	return RotationMatrix{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// At returns the element at row i, column j.
func (r RotationMatrix) At(i, j int) float64 {
	return r.m.At(i, j)
}

// Matrix exposes the underlying matrix for read-only use.
func (r RotationMatrix) Matrix() mat.Matrix {
	return r.m
}

// T returns the transpose, which for a rotation is also the inverse.
func (r RotationMatrix) T() RotationMatrix {
	return RotationMatrix{m: mat.DenseCopyOf(r.m.T())}
}

// Mul returns r·o.
func (r RotationMatrix) Mul(o RotationMatrix) RotationMatrix {
	var d mat.Dense
	d.Mul(r.m, o.m)
	return RotationMatrix{m: &d}
}

// Apply returns r·v.
func (r RotationMatrix) Apply(v pt.Vector) pt.Vector {
	var out mat.VecDense
	out.MulVec(r.m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return V(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

// Det returns the determinant, 1 up to rounding.
func (r RotationMatrix) Det() float64 {
	return mat.Det(r.m)
}

// EqualApprox reports whether every element of r and o differs by at most tol.
func (r RotationMatrix) EqualApprox(o RotationMatrix, tol float64) bool {
	return mat.EqualApprox(r.m, o.m, tol)
}

func (r RotationMatrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(r.m, mat.Squeeze()))
}

// ElementaryRotation builds the Givens rotation of angle radians about axis.
//
// The rotation acts on the (i, j) plane with i = axis-2 and j = axis-1
// (mod 3), which yields the right-handed rotation for all three axes from a
// single formula. With inverse set the transpose is returned, rotating the
// coordinate frame instead of the vector.
func ElementaryRotation(axis Axis, angle float64, inverse bool) (RotationMatrix, error) {
	if !axis.valid() {
		return RotationMatrix{}, fmt.Errorf("elementary rotation about %v: %w", axis, ErrInvalidArgument)
	}
	if !isFinite(angle) {
		return RotationMatrix{}, fmt.Errorf("elementary rotation about %v by %v: %w", axis, angle, ErrTypeMismatch)
	}

	c, s := math.Cos(angle), math.Sin(angle)

	k := int(axis)
	i, j := (k+1)%3, (k+2)%3 // k-2 and k-1 wrapped into [0, 3)

	m := mat.NewDense(3, 3, nil)
	m.Set(k, k, 1)
	m.Set(i, i, c)
	m.Set(j, j, c)
	m.Set(j, i, s)
	m.Set(i, j, -s)

	r := RotationMatrix{m: m}
	if inverse {
		r = r.T()
	}
	verifyRotation(r)
	return r, nil
}

// Attitude is the photogrammetric orientation of a camera, in radians.
type Attitude struct {
	Omega float64
	Phi   float64
	Kappa float64
}

// DirectRotation composes R_z(kappa)·R_y(phi)·R_x(omega).
func DirectRotation(att Attitude) (RotationMatrix, error) {
	rotO, err := ElementaryRotation(AxisX, att.Omega, false)
	if err != nil {
		return RotationMatrix{}, fmt.Errorf("omega: %w", err)
	}
	rotP, err := ElementaryRotation(AxisY, att.Phi, false)
	if err != nil {
		return RotationMatrix{}, fmt.Errorf("phi: %w", err)
	}
	rotK, err := ElementaryRotation(AxisZ, att.Kappa, false)
	if err != nil {
		return RotationMatrix{}, fmt.Errorf("kappa: %w", err)
	}
	r := rotK.Mul(rotP).Mul(rotO)
	verifyRotation(r)
	return r, nil
}

// SunRotation composes the frame rotation for a clockwise azimuth with the
// vector rotation for elevation: R_z(azimuth)ᵀ·R_x(elevation).
func SunRotation(azimuth, elevation float64) (RotationMatrix, error) {
	rotAz, err := ElementaryRotation(AxisZ, azimuth, true)
	if err != nil {
		return RotationMatrix{}, fmt.Errorf("azimuth: %w", err)
	}
	rotEl, err := ElementaryRotation(AxisX, elevation, false)
	if err != nil {
		return RotationMatrix{}, fmt.Errorf("elevation: %w", err)
	}
	r := rotAz.Mul(rotEl)
	verifyRotation(r)
	return r, nil
}
