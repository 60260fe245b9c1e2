// Package tokenstore persists the push registration token across restarts
// and applies rotations to a live client descriptor.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"verifykit/client"
)

// Global mutex for file operations
var fileMutex sync.RWMutex

const stateFileName = "registration.json"

type Operations interface {
	Save(token string) error
	Load() (string, error)
	Apply(c *client.Client, token string) error
	Restore(c *client.Client) error
	Clear() error
}

type tokenState struct {
	RegistrationToken string `json:"registration_token"`
	RotatedAt         int64  `json:"rotated_at,omitempty"`
}

type Store struct {
	stateDir string
}

func New(stateDir string) *Store {
	return &Store{
		stateDir: stateDir,
	}
}

// Save persists the token, replacing any previously stored value.
func (s *Store) Save(token string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(s.stateDir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(tokenState{
		RegistrationToken: token,
		RotatedAt:         time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	stateFile := filepath.Join(s.stateDir, stateFileName)
	// Write to a temp file first, then rename for atomic operation
	tmpFile := stateFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpFile, stateFile)
}

// Load returns the persisted token, or an error when none has been saved.
func (s *Store) Load() (string, error) {
	fileMutex.RLock()
	defer fileMutex.RUnlock()

	stateFile := filepath.Join(s.stateDir, stateFileName)

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return "", err
	}

	var state tokenState
	if err := json.Unmarshal(data, &state); err != nil {
		return "", fmt.Errorf("failed to parse registration state: %w", err)
	}

	return state.RegistrationToken, nil
}

// Apply rotates the token on the descriptor and persists it.
func (s *Store) Apply(c *client.Client, token string) error {
	c.SetRegistrationToken(token)

	if err := s.Save(token); err != nil {
		return fmt.Errorf("failed to persist registration token: %w", err)
	}

	log.WithField("app_id", c.ApplicationID()).Info("registration token rotated")
	return nil
}

// Restore loads a previously persisted token into a freshly constructed
// descriptor. A missing state file means there is nothing to restore.
func (s *Store) Restore(c *client.Client) error {
	token, err := s.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.SetRegistrationToken(token)
	return nil
}

// Clear removes the persisted token.
func (s *Store) Clear() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	stateFile := filepath.Join(s.stateDir, stateFileName)
	err := os.Remove(stateFile)

	// If file doesn't exist, that's fine
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
