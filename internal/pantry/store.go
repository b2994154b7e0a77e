package pantry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// stateFile is the on-disk shape: the full pair of sets, as produced by
// Toggle. Storing the whole pair keeps every write atomic over both deltas.
type stateFile struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"unavailable"`
}

// Store persists a State to a JSON file. The engine itself never touches
// disk; Store is the caller-side collaborator that applies each transition
// as a single atomic write.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the state file. A missing file is an empty state, not an
// error; the record is created implicitly on first toggle.
func (st *Store) Load() (*State, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("reading pantry state: %w", err)
	}

	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pantry state: %w", err)
	}
	return FromNames(f.Available, f.Unavailable)
}

// Save writes the complete pair of sets via a temp file and rename, so a
// crashed write can never leave a half-applied transition behind.
func (st *Store) Save(s *State) error {
	available, unavailable := s.Names()
	data, err := json.MarshalIndent(stateFile{
		Available:   available,
		Unavailable: unavailable,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pantry state: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating pantry state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pantry-*.json")
	if err != nil {
		return fmt.Errorf("writing pantry state: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing pantry state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing pantry state: %w", err)
	}
	if err := os.Rename(tmpName, st.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing pantry state: %w", err)
	}
	return nil
}
