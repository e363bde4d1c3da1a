package dataset

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// Source is anything that can produce the full feature sequence: the GeoJSON
// file on disk, or the sqlite table populated by an admin import.
type Source interface {
	Load() ([]models.LocationFeature, error)
}

// FileSource reads the dataset from a GeoJSON file.
type FileSource struct {
	Path string
}

func (s *FileSource) Load() ([]models.LocationFeature, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, s.Path, err)
	}
	return ParseFeatureCollection(raw)
}

// RepositorySource serves the dataset from the sqlite snapshot written by an
// admin import.
type RepositorySource struct {
	Repo interface {
		List() ([]models.LocationFeature, error)
	}
}

func (s *RepositorySource) Load() ([]models.LocationFeature, error) {
	features, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: sqlite snapshot is empty, run an import first", ErrDataUnavailable)
	}
	return features, nil
}

// Store caches the loaded dataset for the process lifetime. The dataset is
// read-only after load; only Reload (admin-triggered) drops the cache. A
// failed load is not cached, so the next caller retries the source.
type Store struct {
	mu       sync.Mutex
	source   Source
	features []models.LocationFeature
	loaded   bool
}

// NewStore creates a store over the given source.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load returns the cached feature sequence, fetching it on first use.
func (s *Store) Load() ([]models.LocationFeature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.features, nil
	}

	features, err := s.source.Load()
	if err != nil {
		return nil, err
	}

	s.features = features
	s.loaded = true
	log.Printf("Dataset loaded: %d locations", len(features))
	return s.features, nil
}

// Reload drops the cache; the next Load re-reads the source.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features = nil
	s.loaded = false
}
