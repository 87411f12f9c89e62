package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

const MaxProfileNameLength = 64

var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrProfileNameTooLong  = fmt.Errorf("profile name must be at most %d characters", MaxProfileNameLength)
	ErrProfileNameTaken    = errors.New("profile name already taken")
	ErrProfileNotFound     = errors.New("profile not found")
)

// ProfileStore is the persistence ProfileService needs.
type ProfileStore interface {
	Create(ctx context.Context, p *model.Profile) error
	GetByID(ctx context.Context, userID, id int64) (*model.Profile, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
	Delete(ctx context.Context, userID, id int64) error
}

// ProfileService manages saved generator option sets.
type ProfileService struct {
	store ProfileStore
	gen   *GeneratorService
	now   func() time.Time
}

// NewProfileService creates a new ProfileService. Unset options in requests
// take the generator's defaults.
func NewProfileService(store ProfileStore, gen *GeneratorService) *ProfileService {
	return &ProfileService{store: store, gen: gen, now: time.Now}
}

// CreateProfile validates and stores a new profile for userID.
func (s *ProfileService) CreateProfile(ctx context.Context, userID int64, req model.ProfileRequest) (model.ProfileResponse, error) {
	p, err := s.buildProfile(userID, req)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	p.CreatedAt = s.now().UTC().Truncate(time.Second)
	p.UpdatedAt = p.CreatedAt
	if err := s.store.Create(ctx, p); err != nil {
		return model.ProfileResponse{}, mapProfileError(err)
	}

	return toProfileResponse(*p), nil
}

// ListProfiles returns all of userID's profiles.
func (s *ProfileService) ListProfiles(ctx context.Context, userID int64) ([]model.ProfileResponse, error) {
	profiles, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = toProfileResponse(p)
	}
	return out, nil
}

// UpdateProfile replaces the name and options of an existing profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, id int64, req model.ProfileRequest) (model.ProfileResponse, error) {
	existing, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.ProfileResponse{}, mapProfileError(err)
	}

	p, err := s.buildProfile(userID, req)
	if err != nil {
		return model.ProfileResponse{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC().Truncate(time.Second)

	if err := s.store.Update(ctx, p); err != nil {
		return model.ProfileResponse{}, mapProfileError(err)
	}

	return toProfileResponse(*p), nil
}

// DeleteProfile removes one of userID's profiles.
func (s *ProfileService) DeleteProfile(ctx context.Context, userID, id int64) error {
	return mapProfileError(s.store.Delete(ctx, userID, id))
}

// GenerateFromProfile generates count passwords with a saved profile's options.
func (s *ProfileService) GenerateFromProfile(ctx context.Context, userID, id int64, count int) (model.GenerateResponse, error) {
	p, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.GenerateResponse{}, mapProfileError(err)
	}
	if count == 0 {
		count = 1
	}
	return s.gen.Run(profileOptions(*p), count)
}

func (s *ProfileService) buildProfile(userID int64, req model.ProfileRequest) (*model.Profile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrProfileNameRequired
	}
	if utf8.RuneCountInString(name) > MaxProfileNameLength {
		return nil, ErrProfileNameTooLong
	}

	opts, err := s.gen.Resolve(model.GenerateRequest{
		Length:           req.Length,
		Lowercase:        req.Lowercase,
		Uppercase:        req.Uppercase,
		Digits:           req.Digits,
		Symbols:          req.Symbols,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	})
	if err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	return &model.Profile{
		UserID:           userID,
		Name:             name,
		Length:           opts.Length,
		Lowercase:        opts.Lowercase,
		Uppercase:        opts.Uppercase,
		Digits:           opts.Digits,
		Symbols:          opts.Symbols,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
	}, nil
}

func profileOptions(p model.Profile) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length: p.Length,
		CharacterClasses: crypto.CharacterClasses{
			Lowercase:        p.Lowercase,
			Uppercase:        p.Uppercase,
			Digits:           p.Digits,
			Symbols:          p.Symbols,
			ExcludeAmbiguous: p.ExcludeAmbiguous,
		},
	}
}

func toProfileResponse(p model.Profile) model.ProfileResponse {
	return model.ProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Length:           p.Length,
		Lowercase:        p.Lowercase,
		Uppercase:        p.Uppercase,
		Digits:           p.Digits,
		Symbols:          p.Symbols,
		ExcludeAmbiguous: p.ExcludeAmbiguous,
		UpdatedAt:        p.UpdatedAt,
	}
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return ErrProfileNotFound
	case errors.Is(err, repository.ErrDuplicateProfile):
		return ErrProfileNameTaken
	default:
		return err
	}
}
