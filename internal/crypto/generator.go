package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrEmptyAlphabet = errors.New("alphabet is empty: select at least one character set")
	ErrInvalidLength = errors.New("password length must not be negative")
)

// GeneratorOptions configures a single password generation.
type GeneratorOptions struct {
	Length int
	CharacterClasses
}

// Result is the outcome of a password generation.
type Result struct {
	Password string
	PoolSize int
	Entropy  float64
	Strength Strength
}

// Summary returns the human-readable entropy and strength line.
func (r Result) Summary() string {
	return FormatSummary(r.Entropy, r.Strength)
}

// Generate builds the alphabet for opts, samples a password from it and
// estimates its strength.
func Generate(opts GeneratorOptions) (Result, error) {
	alphabet := BuildAlphabet(opts.CharacterClasses)

	password, err := Sample(opts.Length, alphabet)
	if err != nil {
		return Result{}, err
	}

	entropy := EstimateEntropy(opts.Length, len(alphabet))
	return Result{
		Password: password,
		PoolSize: len(alphabet),
		Entropy:  entropy,
		Strength: StrengthLabel(entropy),
	}, nil
}

// Sample draws length characters independently and uniformly from alphabet
// using crypto/rand. Characters may repeat.
func Sample(length int, alphabet string) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if length < 0 {
		return "", ErrInvalidLength
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", fmt.Errorf("reading secure random source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
