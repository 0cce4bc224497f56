package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/paydesk/paydesk/internal/common"
)

// stateFileName holds the token under the application data directory.
const stateFileName = "session.json"

type sessionState struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
}

// FileStore persists the bearer token in a mode-0600 file under the
// given directory. It implements service.SessionStore.
type FileStore struct {
	path string
}

// NewFileStore creates a token store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, stateFileName)}
}

// Token returns the stored token, or common.ErrNoSession when nothing is
// stored.
func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", common.ErrNoSession
		}
		return "", err
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return "", common.ErrNoSession
	}
	if state.Token == "" {
		return "", common.ErrNoSession
	}

	return state.Token, nil
}

// SetToken stores the token, replacing any previous session.
func (s *FileStore) SetToken(token string) error {
	state := sessionState{
		Token:   token,
		SavedAt: time.Now(),
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStore is an in-memory session store used in tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// Token returns the stored token, or common.ErrNoSession.
func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", common.ErrNoSession
	}
	return s.token, nil
}

// SetToken stores the token.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
