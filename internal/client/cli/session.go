package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/filex"
)

// session persists the access token between invocations in a file readable
// only by the owner.
type session struct {
	path string
}

func (s session) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s session) Save(token string) error {
	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(s.path, 0o600)
}

func (s session) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
