package service

import (
	"fmt"
	"log"

	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/repository"
)

// DatasetService handles admin dataset operations: cache reload and the
// GeoJSON-to-sqlite import.
type DatasetService struct {
	store *dataset.Store
	file  *dataset.FileSource
	repo  *repository.LocationRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(store *dataset.Store, file *dataset.FileSource, repo *repository.LocationRepository) *DatasetService {
	return &DatasetService{store: store, file: file, repo: repo}
}

// Reload drops the store cache so the next load re-reads the source.
func (s *DatasetService) Reload() {
	s.store.Reload()
	log.Printf("Dataset cache dropped")
}

// Import reads the GeoJSON file and replaces the sqlite snapshot with its
// contents. The store cache is dropped afterwards so a sqlite-backed store
// picks up the new snapshot.
func (s *DatasetService) Import() (int, error) {
	features, err := s.file.Load()
	if err != nil {
		return 0, err
	}

	if err := s.repo.Import(features); err != nil {
		return 0, fmt.Errorf("failed to import dataset: %w", err)
	}

	s.store.Reload()
	log.Printf("Dataset imported: %d locations", len(features))
	return len(features), nil
}
