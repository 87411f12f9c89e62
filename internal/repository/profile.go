package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDuplicateProfile = errors.New("profile name already exists")
)

const profileColumns = `id, user_id, name, length, lowercase, uppercase, digits, symbols,
	exclude_ambiguous, created_at, updated_at`

// ProfileRepository handles generator profile persistence.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts p with its CreatedAt and UpdatedAt and sets its generated ID.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	query := `INSERT INTO generator_profiles
		(user_id, name, length, lowercase, uppercase, digits, symbols, exclude_ambiguous, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Length, p.Lowercase, p.Uppercase, p.Digits, p.Symbols, p.ExcludeAmbiguous,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateProfile
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// GetByID retrieves one of userID's profiles.
func (r *ProfileRepository) GetByID(ctx context.Context, userID, id int64) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM generator_profiles WHERE user_id = ? AND id = ?`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns userID's profiles ordered by name.
func (r *ProfileRepository) ListByUser(ctx context.Context, userID int64) ([]model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM generator_profiles WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}

	return profiles, rows.Err()
}

// Update overwrites the name, options and UpdatedAt of an existing profile.
// It returns ErrProfileNotFound when no row matched, which relies on the
// connection reporting found rows (see NewDB).
func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	query := `UPDATE generator_profiles
		SET name = ?, length = ?, lowercase = ?, uppercase = ?, digits = ?, symbols = ?,
			exclude_ambiguous = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Length, p.Lowercase, p.Uppercase, p.Digits, p.Symbols, p.ExcludeAmbiguous,
		p.UpdatedAt, p.UserID, p.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateProfile
		}
		return err
	}
	return requireRow(result)
}

// Delete removes one of userID's profiles.
func (r *ProfileRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM generator_profiles WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// requireRow maps a write that touched no row to ErrProfileNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	p := &model.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Lowercase, &p.Uppercase, &p.Digits, &p.Symbols, &p.ExcludeAmbiguous,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
