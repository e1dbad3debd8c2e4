// Package rational provides Frac, an exact fraction of two int64 values kept
// in lowest terms with a positive denominator.
//
// What:
//
//   - Frac is a plain comparable value: two fractions are equal exactly when
//     their Go values are equal, so Frac can be used inside map keys.
//   - Arithmetic (Add, Sub, Mul, Quo) and rounding (Floor, Ceil) are exact.
//
// Why:
//
//   - Interval endpoints produced by projecting grid geometry are rational.
//     Corner and turn decisions depend on exact integrality tests which
//     floating point cannot answer reliably.
//
// Limits:
//
//   - Numerators and denominators are int64. Values arising from grids up to
//     a few hundred thousand cells per side stay far from overflow.
//   - A zero denominator panics with ErrZeroDenominator.
package rational

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator is the panic value used when a fraction with a zero
// denominator would be created.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// Frac is an exact rational number num/den in lowest terms, den > 0.
// The zero value is 0/1 once normalised; use Int(0) or New(0, 1) to be explicit.
type Frac struct {
	num int64
	den int64
}

// New returns num/den reduced to lowest terms.
// Panics with ErrZeroDenominator if den == 0.
func New(num, den int64) Frac {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}

	return Frac{num: num, den: den}
}

// Int returns the integer n as a fraction n/1.
func Int(n int) Frac {
	return Frac{num: int64(n), den: 1}
}

// Num returns the numerator.
func (f Frac) Num() int64 { return f.num }

// Den returns the (positive) denominator. A zero-value Frac reports 1.
func (f Frac) Den() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// norm repairs the zero value so arithmetic never divides by zero.
func (f Frac) norm() Frac {
	if f.den == 0 {
		return Frac{num: f.num, den: 1}
	}
	return f
}

// Add returns f + o.
func (f Frac) Add(o Frac) Frac {
	f, o = f.norm(), o.norm()
	return New(f.num*o.den+o.num*f.den, f.den*o.den)
}

// Sub returns f - o.
func (f Frac) Sub(o Frac) Frac {
	f, o = f.norm(), o.norm()
	return New(f.num*o.den-o.num*f.den, f.den*o.den)
}

// Mul returns f * o.
func (f Frac) Mul(o Frac) Frac {
	f, o = f.norm(), o.norm()
	return New(f.num*o.num, f.den*o.den)
}

// Quo returns f / o. Panics with ErrZeroDenominator if o == 0.
func (f Frac) Quo(o Frac) Frac {
	f, o = f.norm(), o.norm()
	return New(f.num*o.den, f.den*o.num)
}

// AddInt returns f + n.
func (f Frac) AddInt(n int) Frac { return f.Add(Int(n)) }

// SubInt returns f - n.
func (f Frac) SubInt(n int) Frac { return f.Sub(Int(n)) }

// MulInt returns f * n.
func (f Frac) MulInt(n int) Frac { return f.Mul(Int(n)) }

// Neg returns -f.
func (f Frac) Neg() Frac {
	f = f.norm()
	return Frac{num: -f.num, den: f.den}
}

// Abs returns |f|.
func (f Frac) Abs() Frac {
	f = f.norm()
	return Frac{num: abs(f.num), den: f.den}
}

// Cmp compares f and o and returns -1, 0 or +1.
func (f Frac) Cmp(o Frac) int {
	f, o = f.norm(), o.norm()
	l, r := f.num*o.den, o.num*f.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// CmpInt compares f with the integer n.
func (f Frac) CmpInt(n int) int { return f.Cmp(Int(n)) }

// Less reports f < o.
func (f Frac) Less(o Frac) bool { return f.Cmp(o) < 0 }

// Equal reports f == o numerically.
func (f Frac) Equal(o Frac) bool { return f.Cmp(o) == 0 }

// IsInt reports whether f has denominator 1.
func (f Frac) IsInt() bool { return f.Den() == 1 }

// Floor returns the greatest integer ≤ f.
func (f Frac) Floor() int {
	f = f.norm()
	q := f.num / f.den
	if f.num%f.den != 0 && f.num < 0 {
		q--
	}
	return int(q)
}

// Ceil returns the least integer ≥ f.
func (f Frac) Ceil() int {
	f = f.norm()
	q := f.num / f.den
	if f.num%f.den != 0 && f.num > 0 {
		q++
	}
	return int(q)
}

// Float64 returns the nearest float64 value of f.
func (f Frac) Float64() float64 {
	f = f.norm()
	return float64(f.num) / float64(f.den)
}

// String formats f as "n" for integers and "n/d" otherwise.
func (f Frac) String() string {
	f = f.norm()
	if f.den == 1 {
		return fmt.Sprintf("%d", f.num)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// Min returns the smaller of a and b.
func Min(a, b Frac) Frac {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max(a, b Frac) Frac {
	if a.Less(b) {
		return b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
