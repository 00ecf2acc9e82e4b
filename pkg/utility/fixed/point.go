package fixed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// ErrOutOfRange is returned by the Try operations when the result cannot be represented
// with 19 significant digits or the operand is outside the function domain.
var ErrOutOfRange = errors.New("decimal out of range")

// Point is a thin wrapper around decimal implementation. Constructors panic on invalid input;
// arithmetic is checked and returns ErrOutOfRange instead of panicking.
type Point struct {
	v decimal.Decimal
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

// Parse converts a decimal string such as "12.5" into a Point.
func Parse(s string) (Point, error) {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return Point{}, fmt.Errorf("unable to parse %q as decimal: %w", s, err)
	}
	return Point{d}, nil
}

// ParsePercent converts a percentage-like string ("5%", "5", "2.5 %") into a fraction (0.05).
func ParsePercent(s string) (Point, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if trimmed == "" {
		return Point{}, fmt.Errorf("empty percentage %q", s)
	}
	p, err := Parse(trimmed)
	if err != nil {
		return Point{}, err
	}
	rate, err := p.TryDiv(Hundred)
	if err != nil {
		return Point{}, err
	}
	return Point{rate.v.Trim(0)}, nil
}

func (p Point) String() string { return p.v.String() }

func (p Point) TryAdd(o Point) (Point, error) {
	v, err := p.v.Add(o.v)
	return checked(v, err, "%s + %s", p, o)
}

func (p Point) TryMul(o Point) (Point, error) {
	v, err := p.v.Mul(o.v)
	return checked(v, err, "%s * %s", p, o)
}

func (p Point) TryDiv(o Point) (Point, error) {
	v, err := p.v.Quo(o.v)
	return checked(v, err, "%s / %s", p, o)
}

func (p Point) TryMulInt64(o int64) (Point, error) {
	return p.TryMul(FromInt64(o, 0))
}

func (p Point) TryLog() (Point, error) {
	v, err := p.v.Log()
	return checked(v, err, "ln(%s)", p)
}

func (p Point) TryExp() (Point, error) {
	v, err := p.v.Exp()
	return checked(v, err, "exp(%s)", p)
}

func (p Point) IsZero() bool     { return p.v.IsZero() }
func (p Point) IsPositive() bool { return p.v.IsPos() }
func (p Point) IsNegative() bool { return p.v.IsNeg() }

// Round rounds half to even to the given number of decimal places and drops trailing zeros.
func (p Point) Round(scale int) Point { return Point{p.v.Round(scale).Trim(0)} }

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func checked(v decimal.Decimal, err error, format string, args ...any) (Point, error) {
	if err != nil {
		return Zero, fmt.Errorf("%w: computing %s: %w", ErrOutOfRange, fmt.Sprintf(format, args...), err)
	}
	return Point{v}, nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
