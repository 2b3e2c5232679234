package risk

import (
	"strings"

	"github.com/venuelabs/matching-venue/matching"
)

// Signed is a signed fixed-point decimal built on top of the unsigned
// matching.Uint, stored as sign plus magnitude. It carries position
// quantities (positive long, negative short) and P&L values.
type Signed struct {
	neg bool
	abs matching.Uint
}

// NewSigned creates a signed value from magnitude and sign.
// Zero is always normalized to non-negative.
func NewSigned(abs matching.Uint, negative bool) Signed {
	if abs.IsZero() {
		return Signed{}
	}
	return Signed{neg: negative, abs: abs}
}

// SignedZero returns the zero value.
func SignedZero() Signed {
	return Signed{}
}

// Abs returns the magnitude.
func (s Signed) Abs() matching.Uint {
	return s.abs
}

// IsZero returns true for the zero value.
func (s Signed) IsZero() bool {
	return s.abs.IsZero()
}

// IsNegative returns true for values below zero.
func (s Signed) IsNegative() bool {
	return s.neg
}

// Neg returns the value with the opposite sign.
func (s Signed) Neg() Signed {
	return NewSigned(s.abs, !s.neg)
}

// Add returns s+v.
func (s Signed) Add(v Signed) Signed {
	if s.neg == v.neg {
		return NewSigned(s.abs.Add(v.abs), s.neg)
	}
	// Opposite signs: the bigger magnitude wins
	switch s.abs.Cmp(v.abs) {
	case 0:
		return Signed{}
	case 1:
		return NewSigned(s.abs.Sub(v.abs), s.neg)
	default:
		return NewSigned(v.abs.Sub(s.abs), v.neg)
	}
}

// Sub returns s-v.
func (s Signed) Sub(v Signed) Signed {
	return s.Add(v.Neg())
}

// Mul returns s scaled by an unsigned fixed-point factor.
// The result keeps the fixed-point scale of the operands.
func (s Signed) Mul(v matching.Uint) Signed {
	return NewSigned(s.abs.Mul(v).Div64(matching.UintPrecision), s.neg)
}

// Equals returns true when both sign and magnitude match.
func (s Signed) Equals(v Signed) bool {
	return s.neg == v.neg && s.abs.Equals(v.abs)
}

// ToFloatString renders the value as a decimal string, e.g. "-101.25".
func (s Signed) ToFloatString() string {
	if s.neg {
		return "-" + s.abs.ToFloatString()
	}
	return s.abs.ToFloatString()
}

// String renders the raw fixed-point integer with sign.
func (s Signed) String() string {
	if s.neg {
		return "-" + s.abs.String()
	}
	return s.abs.String()
}

// MarshalJSON renders the value as a JSON number in raw fixed-point scale.
func (s Signed) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalJSON parses a JSON number in raw fixed-point scale.
func (s *Signed) UnmarshalJSON(data []byte) error {
	str := string(data)
	neg := strings.HasPrefix(str, "-")
	abs, err := matching.NewUintFromStr(strings.TrimPrefix(str, "-"))
	if err != nil {
		return err
	}
	*s = NewSigned(abs, neg)
	return nil
}

// signedDiff returns a-b as a signed value.
func signedDiff(a, b matching.Uint) Signed {
	if a.GreaterThanOrEqualTo(b) {
		return NewSigned(a.Sub(b), false)
	}
	return NewSigned(b.Sub(a), true)
}
