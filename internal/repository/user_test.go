package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

func TestNewRepositories(t *testing.T) {
	if repo := NewUserRepository(nil); repo == nil || repo.db != nil {
		t.Fatal("expected non-nil UserRepository with nil db")
	}
	if repo := NewProfileRepository(nil); repo == nil || repo.db != nil {
		t.Fatal("expected non-nil ProfileRepository with nil db")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUserNotFound, "user not found"},
		{ErrDuplicateEmail, "email already exists"},
		{ErrProfileNotFound, "profile not found"},
		{ErrDuplicateProfile, "profile name already exists"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected error message: %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found", ErrUserNotFound, false},
		{"mysql duplicate", errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.email'"), true},
		{"wrapped duplicate", fmt.Errorf("insert: %w", errors.New("Duplicate entry '1-work'")), true},
		{"driver error 1062", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}), true},
		{"driver error other", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepareDSN(t *testing.T) {
	dsn, err := prepareDSN("app:secret@tcp(db:3306)/passforge")
	if err != nil {
		t.Fatalf("prepareDSN() unexpected error: %v", err)
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("ParseDSN() unexpected error: %v", err)
	}
	if !cfg.ClientFoundRows {
		t.Error("expected clientFoundRows so unchanged updates still match")
	}
	if !cfg.ParseTime || cfg.Loc != time.UTC {
		t.Errorf("expected UTC time parsing, got parseTime=%v loc=%v", cfg.ParseTime, cfg.Loc)
	}
	if cfg.User != "app" || cfg.Addr != "db:3306" || cfg.DBName != "passforge" {
		t.Errorf("connection settings lost: %+v", cfg)
	}
}

func TestPrepareDSNInvalid(t *testing.T) {
	if _, err := prepareDSN("not a dsn"); err == nil {
		t.Error("expected error for malformed DSN")
	}
}
