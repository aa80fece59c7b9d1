// zanai/services/token/store.go
package token

import (
	"os"
	"path/filepath"
	"strings"
)

// The token lives under one fixed name, mirroring the single localStorage
// key the web client used. Its presence alone gates the logged-in view.
const fileName = "zanai-token"

type Store struct {
	dir string
}

// NewStore keeps the token under the user config dir.
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(base, "zanai")), nil
}

// NewStoreAt pins the storage directory, mainly for tests.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the persisted token, or "" when none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Save(tok string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, fileName), []byte(tok), 0o600)
}

// Clear removes the token; a missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, fileName))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
