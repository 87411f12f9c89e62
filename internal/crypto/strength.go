package crypto

import (
	"fmt"
	"math"
)

// Strength is a qualitative rating of a password's entropy.
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Reasonable
	Strong
	VeryStrong
)

// Lower bounds in bits, inclusive.
const (
	weakBits       = 28
	reasonableBits = 36
	strongBits     = 60
	veryStrongBits = 80
)

var strengthNames = [...]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Reasonable: "Reasonable",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

func (s Strength) String() string {
	if s < VeryWeak || s > VeryStrong {
		return fmt.Sprintf("Strength(%d)", int(s))
	}
	return strengthNames[s]
}

// MarshalText encodes the strength as its label.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EstimateEntropy returns the entropy in bits of a password of the given
// length drawn uniformly from a pool of poolSize characters.
func EstimateEntropy(length, poolSize int) float64 {
	if poolSize <= 1 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// StrengthLabel maps an entropy estimate onto a Strength.
func StrengthLabel(bits float64) Strength {
	switch {
	case math.IsNaN(bits) || bits < weakBits:
		return VeryWeak
	case bits < reasonableBits:
		return Weak
	case bits < strongBits:
		return Reasonable
	case bits < veryStrongBits:
		return Strong
	default:
		return VeryStrong
	}
}

// FormatSummary renders the entropy and strength the way the generator
// displays them.
func FormatSummary(bits float64, s Strength) string {
	return fmt.Sprintf("Entropy: %.1f bits — Strength: %s", bits, s)
}
