// Package export writes generated passwords to user-chosen files.
package export

import (
	"errors"
	"fmt"
	"os"
)

var ErrNothingToSave = errors.New("nothing to save: generate a password first")

// WritePassword writes password followed by a newline to path, replacing any
// existing content. New files are created readable by the owner only.
func WritePassword(path, password string) error {
	if password == "" {
		return ErrNothingToSave
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not save file: %w", err)
	}

	if _, err := f.WriteString(password + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("could not save file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not save file: %w", err)
	}

	return nil
}
