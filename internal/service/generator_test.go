package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(config.DefaultGeneratorDefaults())
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.PoolSize != 88 {
		t.Errorf("expected pool size 88, got %d", resp.PoolSize)
	}
	if resp.Strength != "Very Strong" {
		t.Errorf("expected Very Strong, got %q", resp.Strength)
	}
	if len(resp.Passwords) != 1 || resp.Passwords[0] != resp.Password {
		t.Errorf("expected Passwords to hold the single password, got %v", resp.Passwords)
	}
	if resp.AmbiguousRemoved != 0 {
		t.Errorf("expected no ambiguous characters removed, got %d", resp.AmbiguousRemoved)
	}
}

func TestGenerate_DigitsOnly(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    4,
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Digits:    boolPtr(true),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c < '0' || c > '9' {
			t.Errorf("unexpected character %q in digits-only password", c)
		}
	}
	if resp.Summary != "Entropy: 13.3 bits — Strength: Very Weak" {
		t.Errorf("unexpected summary %q", resp.Summary)
	}
}

func TestGenerate_ExcludeAmbiguous(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:           128,
		ExcludeAmbiguous: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(resp.Password, crypto.AmbiguousChars) {
		t.Errorf("password %q contains ambiguous characters", resp.Password)
	}
	if resp.AmbiguousRemoved != 5 {
		t.Errorf("expected 5 ambiguous characters removed, got %d", resp.AmbiguousRemoved)
	}
	if resp.PoolSize != 83 {
		t.Errorf("expected pool size 83, got %d", resp.PoolSize)
	}
}

func TestGenerate_Presets(t *testing.T) {
	tests := []struct {
		preset string
		want   int
	}{
		{"easy", 8},
		{"Normal", 12},
		{"SECURE", 16},
		{"very secure", 24},
		{"very-secure", 24},
		{"Very_Secure", 24},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{Preset: tt.preset, Length: 99})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.Password) != tt.want {
				t.Errorf("expected length %d, got %d", tt.want, len(resp.Password))
			}
		})
	}
}

func TestGenerate_Count(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Count: 5, Length: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	seen := make(map[string]bool)
	for _, p := range resp.Passwords {
		if len(p) != 20 {
			t.Errorf("expected length 20, got %d", len(p))
		}
		if seen[p] {
			t.Errorf("duplicate password %q", p)
		}
		seen[p] = true
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{"length too short", model.GenerateRequest{Length: 3}, ErrLengthTooShort},
		{"negative length", model.GenerateRequest{Length: -8}, ErrLengthTooShort},
		{"length too long", model.GenerateRequest{Length: 200}, ErrLengthTooLong},
		{"unknown preset", model.GenerateRequest{Preset: "paranoid"}, ErrUnknownPreset},
		{"count too large", model.GenerateRequest{Count: MaxCount + 1}, ErrInvalidCount},
		{"negative count", model.GenerateRequest{Count: -1}, ErrInvalidCount},
		{"no character types", model.GenerateRequest{
			Length:    16,
			Lowercase: boolPtr(false),
			Uppercase: boolPtr(false),
			Digits:    boolPtr(false),
			Symbols:   boolPtr(false),
		}, ErrNoCharacterTypes},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !IsValidationError(err) {
				t.Errorf("%v should be a validation error", err)
			}
		})
	}
}

func TestGenerate_CustomDefaults(t *testing.T) {
	svc := NewGeneratorService(config.GeneratorDefaults{Length: 10, Uppercase: true})
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 10 {
		t.Errorf("expected length 10, got %d", len(resp.Password))
	}
	for _, c := range resp.Password {
		if c < 'A' || c > 'Z' {
			t.Errorf("unexpected character %q with uppercase-only defaults", c)
		}
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	svc := newTestGeneratorService()
	got := svc.Presets()
	if len(got) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(got))
	}
	got[0].Length = 1
	if svc.Presets()[0].Length != 8 {
		t.Error("modifying the returned slice must not change the presets")
	}
}

func TestIsValidationError(t *testing.T) {
	if IsValidationError(errors.New("disk on fire")) {
		t.Error("arbitrary errors are not validation errors")
	}
	if IsValidationError(nil) {
		t.Error("nil is not a validation error")
	}
}
