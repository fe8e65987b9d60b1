package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

// storeData is the serialized form of the history file. Records are
// held oldest first; eviction drops from the front.
type storeData struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Store manages calculation history persisted as a JSON file.
type Store struct {
	mu       sync.RWMutex
	filePath string
	records  []Record
}

// NewStore creates a Store backed by the given file path. If filePath
// is empty, it defaults to ~/.carbonfocus/history.json.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, ".carbonfocus", "history.json")
	}

	return &Store{filePath: filePath}, nil
}

// FilePath returns the file path of the history store.
func (s *Store) FilePath() string {
	return s.filePath
}

// Load reads the history from the JSON file. A missing file leaves the
// store empty; a corrupted file returns ErrStoreCorrupted.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = nil
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	var sd storeData
	if unmarshalErr := json.Unmarshal(data, &sd); unmarshalErr != nil {
		s.records = nil
		return fmt.Errorf("%w: %w", ErrStoreCorrupted, unmarshalErr)
	}

	if sd.Version != StoreVersion {
		s.records = nil
		return fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrStoreCorrupted, sd.Version, StoreVersion)
	}

	if len(sd.Records) > MaxRecords {
		// An oversized file is trimmed on load the same way saves are.
		sd.Records = sd.Records[len(sd.Records)-MaxRecords:]
	}

	s.records = sd.Records
	return nil
}

// Save writes the history to the JSON file atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(storeData{Version: StoreVersion, Records: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.filePath), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating history directory: %w", mkdirErr)
	}

	// Write atomically via temp file
	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing history temp file: %w", writeErr)
	}

	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", renameErr)
	}

	return nil
}

// Add appends a record and evicts from the front when the store
// exceeds MaxRecords. The caller still persists with Save.
func (s *Store) Add(record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if len(s.records) > MaxRecords {
		s.records = s.records[len(s.records)-MaxRecords:]
	}
}

// List returns the records newest first. The slice is a copy; mutating
// it does not affect the store.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[len(s.records)-1-i] = r
	}
	return out
}

// Get retrieves a record by ID.
func (s *Store) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
