// Package rosters ships ready-made name and prize lists for demos
// and local development. Lists are embedded so the binary stays
// self-contained; session state itself is never persisted.
package rosters

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed data/*.json
var rosterFS embed.FS

// registry maps roster IDs to their JSON filenames inside data/.
var registry = map[string]string{
	"demo": "data/demo.json",
}

var ErrRosterNotFound = errors.New("roster not found")

// Roster is a seed list of names and prizes.
type Roster struct {
	ID     string   `json:"id"`
	Names  []string `json:"names"`
	Prizes []string `json:"prizes"`
}

// EmbeddedStore loads rosters from embedded JSON files.
type EmbeddedStore struct {
	once    sync.Once
	rosters map[string]Roster
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.rosters = make(map[string]Roster, len(registry))
	for id, filename := range registry {
		raw, err := rosterFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded roster %s: %w", id, err)
			return
		}
		var r Roster
		if err := json.Unmarshal(raw, &r); err != nil {
			s.err = fmt.Errorf("parse embedded roster %s: %w", id, err)
			return
		}
		r.ID = id
		s.rosters[id] = r
	}
}

func (s *EmbeddedStore) GetRoster(id string) (Roster, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return Roster{}, s.err
	}
	r, ok := s.rosters[id]
	if !ok {
		return Roster{}, ErrRosterNotFound
	}
	return r, nil
}
