package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	MinLength = 4
	MaxLength = 128
	MaxCount  = 50
)

var (
	ErrLengthTooShort   = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong    = fmt.Errorf("password length must be at most %d", MaxLength)
	ErrNoCharacterTypes = errors.New("please select at least one character set (lower, upper, digits or symbols)")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrInvalidCount     = fmt.Errorf("count must be between 1 and %d", MaxCount)
)

var presets = []model.Preset{
	{Name: "Easy", Length: 8},
	{Name: "Normal", Length: 12},
	{Name: "Secure", Length: 16},
	{Name: "Very Secure", Length: 24},
}

// GeneratorService turns user-facing generate requests into calls to the
// crypto core. It owns defaults, presets and input bounds.
type GeneratorService struct {
	defaults config.GeneratorDefaults
}

// NewGeneratorService creates a GeneratorService applying defaults to unset
// request fields.
func NewGeneratorService(defaults config.GeneratorDefaults) *GeneratorService {
	return &GeneratorService{defaults: defaults}
}

// Presets returns the quick-pick lengths.
func (s *GeneratorService) Presets() []model.Preset {
	out := make([]model.Preset, len(presets))
	copy(out, presets)
	return out
}

// Generate produces one or more passwords for req.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := s.Resolve(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	return s.Run(opts, count)
}

// Resolve applies defaults and the optional preset to req. It does not
// validate the result.
func (s *GeneratorService) Resolve(req model.GenerateRequest) (crypto.GeneratorOptions, error) {
	opts := crypto.GeneratorOptions{
		Length: req.Length,
		CharacterClasses: crypto.CharacterClasses{
			Lowercase:        boolOrDefault(req.Lowercase, s.defaults.Lowercase),
			Uppercase:        boolOrDefault(req.Uppercase, s.defaults.Uppercase),
			Digits:           boolOrDefault(req.Digits, s.defaults.Digits),
			Symbols:          boolOrDefault(req.Symbols, s.defaults.Symbols),
			ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, s.defaults.ExcludeAmbiguous),
		},
	}

	if req.Preset != "" {
		p, ok := LookupPreset(req.Preset)
		if !ok {
			return crypto.GeneratorOptions{}, fmt.Errorf("%w: %q", ErrUnknownPreset, req.Preset)
		}
		opts.Length = p.Length
	}

	if opts.Length == 0 {
		opts.Length = s.defaults.Length
	}

	return opts, nil
}

// Run validates opts and generates count passwords with them.
func (s *GeneratorService) Run(opts crypto.GeneratorOptions, count int) (model.GenerateResponse, error) {
	if err := ValidateOptions(opts); err != nil {
		return model.GenerateResponse{}, err
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrInvalidCount
	}

	passwords := make([]string, 0, count)
	var last crypto.Result
	for i := 0; i < count; i++ {
		result, err := crypto.Generate(opts)
		if err != nil {
			if errors.Is(err, crypto.ErrEmptyAlphabet) {
				return model.GenerateResponse{}, ErrNoCharacterTypes
			}
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, result.Password)
		last = result
	}

	slog.Debug("passwords generated",
		"count", count,
		"length", opts.Length,
		"pool_size", last.PoolSize,
		"strength", last.Strength.String(),
	)

	return model.GenerateResponse{
		Password:         passwords[0],
		Passwords:        passwords,
		Length:           opts.Length,
		PoolSize:         last.PoolSize,
		Entropy:          last.Entropy,
		Strength:         last.Strength.String(),
		Summary:          last.Summary(),
		AmbiguousRemoved: crypto.RemovedAmbiguous(opts.CharacterClasses),
	}, nil
}

// ValidateOptions checks length bounds and that at least one class is set.
func ValidateOptions(opts crypto.GeneratorOptions) error {
	if opts.Length < MinLength {
		return ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return ErrLengthTooLong
	}
	if crypto.BuildAlphabet(opts.CharacterClasses) == "" {
		return ErrNoCharacterTypes
	}
	return nil
}

// LookupPreset finds a preset by name, ignoring case and treating '-' and
// '_' as spaces.
func LookupPreset(name string) (model.Preset, bool) {
	key := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
	for _, p := range presets {
		if strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return model.Preset{}, false
}

// IsValidationError reports whether err is a user-correctable input error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrNoCharacterTypes) ||
		errors.Is(err, ErrUnknownPreset) ||
		errors.Is(err, ErrInvalidCount)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
