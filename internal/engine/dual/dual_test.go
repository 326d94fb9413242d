package dual

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type num = Number[mgl64.Vec2]

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func approxVec(a, b mgl64.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}

func TestAddSub(t *testing.T) {
	a := New(1.5, mgl64.Vec2{2, -1})
	b := New(-0.25, mgl64.Vec2{0.5, 3})

	sum := a.Add(b)
	if !approx(sum.Val, 1.25) || !approxVec(sum.Deriv, mgl64.Vec2{2.5, 2}) {
		t.Errorf("Add = (%v, %v), want (1.25, [2.5 2])", sum.Val, sum.Deriv)
	}

	diff := a.Sub(b)
	if !approx(diff.Val, 1.75) || !approxVec(diff.Deriv, mgl64.Vec2{1.5, -4}) {
		t.Errorf("Sub = (%v, %v), want (1.75, [1.5 -4])", diff.Val, diff.Deriv)
	}
}

func TestProductRule(t *testing.T) {
	cases := []struct {
		name string
		a, b num
	}{
		{"unit derivs", New(0.7, mgl64.Vec2{1, 0}), New(-1.3, mgl64.Vec2{0, 1})},
		{"mixed derivs", New(2.25, mgl64.Vec2{0.5, -2}), New(0.8, mgl64.Vec2{3, 1.5})},
		{"one constant", New(-0.4, mgl64.Vec2{1.1, 0.2}), Const[mgl64.Vec2](3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Mul(tc.b)
			if !approx(got.Val, tc.a.Val*tc.b.Val) {
				t.Errorf("Mul value = %v, want %v", got.Val, tc.a.Val*tc.b.Val)
			}
			want := tc.b.Deriv.Mul(tc.a.Val).Add(tc.a.Deriv.Mul(tc.b.Val))
			if !approxVec(got.Deriv, want) {
				t.Errorf("Mul deriv = %v, want %v", got.Deriv, want)
			}
		})
	}
}

func TestQuotientRule(t *testing.T) {
	a := New(1.2, mgl64.Vec2{0.3, -0.7})
	b := New(-2.5, mgl64.Vec2{1.4, 0.6})

	got := a.Div(b)
	if !approx(got.Val, 1.2/-2.5) {
		t.Errorf("Div value = %v, want %v", got.Val, 1.2/-2.5)
	}
	want := a.Deriv.Mul(b.Val).Sub(b.Deriv.Mul(a.Val)).Mul(1 / (b.Val * b.Val))
	if !approxVec(got.Deriv, want) {
		t.Errorf("Div deriv = %v, want %v", got.Deriv, want)
	}
}

func TestDivideByZeroPropagates(t *testing.T) {
	a := New(1.0, mgl64.Vec2{1, 0})
	got := a.Div(Const[mgl64.Vec2](0))
	if !math.IsInf(got.Val, 1) {
		t.Errorf("Div by zero value = %v, want +Inf", got.Val)
	}
	// The derivative divides by zero squared; it must stay non-finite
	// rather than being masked.
	if !math.IsInf(got.Deriv.X(), 0) && !math.IsNaN(got.Deriv.X()) {
		t.Errorf("Div by zero deriv = %v, want non-finite", got.Deriv)
	}
}

func TestChainRule(t *testing.T) {
	cases := []struct {
		name  string
		fn    func(num) num
		value func(float64) float64
		deriv func(float64) float64
	}{
		{"Exp", Exp[mgl64.Vec2], math.Exp, math.Exp},
		{"Sin", Sin[mgl64.Vec2], math.Sin, math.Cos},
		{"Cos", Cos[mgl64.Vec2], math.Cos, func(x float64) float64 { return -math.Sin(x) }},
		{"Tan", Tan[mgl64.Vec2], math.Tan, func(x float64) float64 {
			c := math.Cos(x)
			return 1 / (c * c)
		}},
		{"Sinh", Sinh[mgl64.Vec2], math.Sinh, math.Cosh},
		{"Cosh", Cosh[mgl64.Vec2], math.Cosh, math.Sinh},
		{"Tanh", Tanh[mgl64.Vec2], math.Tanh, func(x float64) float64 {
			c := math.Cosh(x)
			return 1 / (c * c)
		}},
		{"Log", Log[mgl64.Vec2], math.Log, func(x float64) float64 { return 1 / x }},
	}
	points := []float64{0.3, 0.9, 1.7}
	d := mgl64.Vec2{0.8, -1.6}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range points {
				got := tc.fn(New(x, d))
				if !approx(got.Val, tc.value(x)) {
					t.Errorf("%s(%v) value = %v, want %v", tc.name, x, got.Val, tc.value(x))
				}
				want := d.Mul(tc.deriv(x))
				if !approxVec(got.Deriv, want) {
					t.Errorf("%s(%v) deriv = %v, want %v", tc.name, x, got.Deriv, want)
				}
			}
		})
	}
}

func TestPow(t *testing.T) {
	a := New(1.7, mgl64.Vec2{0.4, 2})
	got := Pow(a, 3.5)
	if !approx(got.Val, math.Pow(1.7, 3.5)) {
		t.Errorf("Pow value = %v, want %v", got.Val, math.Pow(1.7, 3.5))
	}
	want := a.Deriv.Mul(3.5 * math.Pow(1.7, 2.5))
	if !approxVec(got.Deriv, want) {
		t.Errorf("Pow deriv = %v, want %v", got.Deriv, want)
	}
}

func TestScalarOps(t *testing.T) {
	a := New(2.0, mgl64.Vec2{1, -3})

	if got := a.AddScalar(0.5); !approx(got.Val, 2.5) || !approxVec(got.Deriv, a.Deriv) {
		t.Errorf("AddScalar = (%v, %v), want (2.5, %v)", got.Val, got.Deriv, a.Deriv)
	}
	if got := a.SubScalar(0.5); !approx(got.Val, 1.5) || !approxVec(got.Deriv, a.Deriv) {
		t.Errorf("SubScalar = (%v, %v), want (1.5, %v)", got.Val, got.Deriv, a.Deriv)
	}
	if got := a.MulScalar(-2); !approx(got.Val, -4) || !approxVec(got.Deriv, mgl64.Vec2{-2, 6}) {
		t.Errorf("MulScalar = (%v, %v), want (-4, [-2 6])", got.Val, got.Deriv)
	}
}

func TestConstHasZeroDerivative(t *testing.T) {
	c := Const[mgl64.Vec2](4.2)
	if c.Val != 4.2 {
		t.Errorf("Const value = %v, want 4.2", c.Val)
	}
	if c.Deriv != (mgl64.Vec2{}) {
		t.Errorf("Const deriv = %v, want zero", c.Deriv)
	}
}

func TestComposition(t *testing.T) {
	// y = sin(x^2) at x carried in the first parameter slot:
	// dy/du = cos(x^2) * 2x.
	x := 0.6
	a := New(x, mgl64.Vec2{1, 0})
	got := Sin(a.Mul(a))
	wantVal := math.Sin(x * x)
	wantDu := math.Cos(x*x) * 2 * x
	if !approx(got.Val, wantVal) {
		t.Errorf("sin(x*x) value = %v, want %v", got.Val, wantVal)
	}
	if !approx(got.Deriv.X(), wantDu) || !approx(got.Deriv.Y(), 0) {
		t.Errorf("sin(x*x) deriv = %v, want [%v 0]", got.Deriv, wantDu)
	}
}
