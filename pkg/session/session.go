package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/spf13/afero"
)

// Snapshot records enough of a drive to resume it: the maze seed rebuilds
// the same layout and the vehicle state puts the car back where it was.
type Snapshot struct {
	Seed    int64         `json:"seed"`
	Vehicle vehicle.State `json:"vehicle"`
	Frames  uint64        `json:"frames"`
	SavedAt time.Time     `json:"saved_at"`
}

// Save writes the snapshot as indented JSON
func (s *Snapshot) Save(fs afero.Fs, filename string) error {
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := afero.WriteFile(fs, filename, data, 0644); err != nil {
		return fmt.Errorf("writing session %s: %w", filename, err)
	}
	return nil
}

// Load reads a snapshot written by Save
func Load(fs afero.Fs, filename string) (*Snapshot, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", filename, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", filename, err)
	}
	return &s, nil
}
