// Package profile persists the shop's company details used on printed
// documents. The profile lives in a local JSON file next to the binary, not
// in the database, so document headers survive database resets.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CompanyProfile holds the header fields printed on receipts and invoices.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	// Logo is a data URL or relative path rendered on documents.
	Logo string `json:"logo,omitempty"`
}

// FileStore reads and writes the profile JSON file. Writes go through a
// temp file and rename so a crash never leaves a half-written profile.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored profile, or a zero profile when the file does not
// exist yet.
func (s *FileStore) Load() (CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p CompanyProfile
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read company profile: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse company profile: %w", err)
	}
	return p, nil
}

// Save replaces the stored profile atomically.
func (s *FileStore) Save(p CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode company profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".company_profile-*.json")
	if err != nil {
		return fmt.Errorf("write company profile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write company profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write company profile: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write company profile: %w", err)
	}
	return nil
}
