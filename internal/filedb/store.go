// Package filedb implements the file-backed persistence layer: five record
// collections serialized as one JSON document. The file is the sole source of
// truth; every operation reloads it, mutating operations write the whole
// snapshot back.
package filedb

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"hospital-management-api/internal/domain/entity"
)

// Snapshot is the full in-memory copy of all five collections. The field
// names match the on-disk layout.
type Snapshot struct {
	Users        []entity.User        `json:"users"`
	Patients     []entity.Patient     `json:"patients"`
	Doctors      []entity.Doctor      `json:"doctors"`
	Appointments []entity.Appointment `json:"appointments"`
	Bills        []entity.Bill        `json:"bills"`
}

// Store owns the backing file. All access goes through one mutex so that a
// read-modify-write cycle can never interleave with another writer.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read loads the snapshot from disk. A missing file is treated as an empty
// store. Empty collections are populated with the seed defaults, and when any
// seeding happened the seeded snapshot is persisted immediately.
func (s *Store) Read() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update runs fn against a freshly loaded snapshot and persists the result,
// all under the store lock. If fn returns an error nothing is written.
func (s *Store) Update(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.save(snap)
}

func (s *Store) load() (*Snapshot, error) {
	snap := &Snapshot{}

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		// Fresh install, fall through to seeding.
	case err != nil:
		return nil, fmt.Errorf("read store file %s: %w", s.path, err)
	default:
		if err := json.Unmarshal(data, snap); err != nil {
			return nil, fmt.Errorf("parse store file %s: %w", s.path, err)
		}
	}

	if seedDefaults(snap) {
		if err := s.save(snap); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

func (s *Store) save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store file %s: %w", s.path, err)
	}
	return nil
}
