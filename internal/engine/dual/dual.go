// Package dual implements forward-mode automatic differentiation on dual
// numbers: a scalar value paired with a derivative vector, propagated
// through arithmetic and elementary functions by the chain rule. The
// derivative carrier is a type parameter, so the same rules serve any
// number of independent parameters.
package dual

import "math"

// Vector constrains derivative carriers: a fixed-size vector type with
// componentwise addition and subtraction and scalar multiplication.
// mathgl's vector types satisfy it as-is.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
}

// Number is a dual number. The zero value is the constant zero. Numbers
// are immutable; every operation returns a fresh value.
//
// Division, Tan, Log and Pow are undefined at the usual singular points
// (zero divisor, non-positive log argument); there they produce NaN/Inf
// which propagate through subsequent operations unguarded.
type Number[V Vector[V]] struct {
	Val   float64
	Deriv V
}

// New returns a dual number carrying the given value and derivative.
func New[V Vector[V]](val float64, deriv V) Number[V] {
	return Number[V]{Val: val, Deriv: deriv}
}

// Const returns a dual number with a zero derivative.
func Const[V Vector[V]](val float64) Number[V] {
	var zero V
	return Number[V]{Val: val, Deriv: zero}
}

// Add returns a+b.
func (a Number[V]) Add(b Number[V]) Number[V] {
	return Number[V]{Val: a.Val + b.Val, Deriv: a.Deriv.Add(b.Deriv)}
}

// Sub returns a-b.
func (a Number[V]) Sub(b Number[V]) Number[V] {
	return Number[V]{Val: a.Val - b.Val, Deriv: a.Deriv.Sub(b.Deriv)}
}

// Mul returns a*b under the product rule.
func (a Number[V]) Mul(b Number[V]) Number[V] {
	return Number[V]{
		Val:   a.Val * b.Val,
		Deriv: a.Deriv.Mul(b.Val).Add(b.Deriv.Mul(a.Val)),
	}
}

// Div returns a/b under the quotient rule. The divisor value must be
// non-zero at the evaluation point.
func (a Number[V]) Div(b Number[V]) Number[V] {
	return Number[V]{
		Val:   a.Val / b.Val,
		Deriv: a.Deriv.Mul(b.Val).Sub(b.Deriv.Mul(a.Val)).Mul(1 / (b.Val * b.Val)),
	}
}

// AddScalar returns a+c, treating c as a constant.
func (a Number[V]) AddScalar(c float64) Number[V] {
	return Number[V]{Val: a.Val + c, Deriv: a.Deriv}
}

// SubScalar returns a-c, treating c as a constant.
func (a Number[V]) SubScalar(c float64) Number[V] {
	return Number[V]{Val: a.Val - c, Deriv: a.Deriv}
}

// MulScalar returns a*c, treating c as a constant.
func (a Number[V]) MulScalar(c float64) Number[V] {
	return Number[V]{Val: a.Val * c, Deriv: a.Deriv.Mul(c)}
}

// Exp returns e^a.
func Exp[V Vector[V]](a Number[V]) Number[V] {
	e := math.Exp(a.Val)
	return Number[V]{Val: e, Deriv: a.Deriv.Mul(e)}
}

// Sin returns sin(a).
func Sin[V Vector[V]](a Number[V]) Number[V] {
	return Number[V]{Val: math.Sin(a.Val), Deriv: a.Deriv.Mul(math.Cos(a.Val))}
}

// Cos returns cos(a).
func Cos[V Vector[V]](a Number[V]) Number[V] {
	return Number[V]{Val: math.Cos(a.Val), Deriv: a.Deriv.Mul(-math.Sin(a.Val))}
}

// Tan returns sin(a)/cos(a).
func Tan[V Vector[V]](a Number[V]) Number[V] {
	return Sin(a).Div(Cos(a))
}

// Sinh returns sinh(a).
func Sinh[V Vector[V]](a Number[V]) Number[V] {
	return Number[V]{Val: math.Sinh(a.Val), Deriv: a.Deriv.Mul(math.Cosh(a.Val))}
}

// Cosh returns cosh(a).
func Cosh[V Vector[V]](a Number[V]) Number[V] {
	return Number[V]{Val: math.Cosh(a.Val), Deriv: a.Deriv.Mul(math.Sinh(a.Val))}
}

// Tanh returns sinh(a)/cosh(a).
func Tanh[V Vector[V]](a Number[V]) Number[V] {
	return Sinh(a).Div(Cosh(a))
}

// Log returns the natural logarithm of a. The value must be positive.
func Log[V Vector[V]](a Number[V]) Number[V] {
	return Number[V]{Val: math.Log(a.Val), Deriv: a.Deriv.Mul(1 / a.Val)}
}

// Pow returns a raised to the fixed real exponent n.
func Pow[V Vector[V]](a Number[V], n float64) Number[V] {
	return Number[V]{
		Val:   math.Pow(a.Val, n),
		Deriv: a.Deriv.Mul(n * math.Pow(a.Val, n-1)),
	}
}
