package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// countingSource fakes a dataset source and counts loads.
type countingSource struct {
	loads    int
	features []models.LocationFeature
	err      error
}

func (s *countingSource) Load() ([]models.LocationFeature, error) {
	s.loads++
	return s.features, s.err
}

func TestStore_CachesAfterFirstLoad(t *testing.T) {
	src := &countingSource{features: []models.LocationFeature{{ID: "a"}}}
	store := NewStore(src)

	first, err := store.Load()
	require.NoError(t, err)
	second, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, src.loads)
	assert.Equal(t, first, second)
}

func TestStore_DoesNotCacheFailures(t *testing.T) {
	src := &countingSource{err: fmt.Errorf("%w: boom", ErrDataUnavailable)}
	store := NewStore(src)

	_, err := store.Load()
	require.ErrorIs(t, err, ErrDataUnavailable)

	// Source recovers; the next load retries instead of serving a cached error.
	src.err = nil
	src.features = []models.LocationFeature{{ID: "a"}}
	features, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, features, 1)
	assert.Equal(t, 2, src.loads)
}

func TestStore_Reload(t *testing.T) {
	src := &countingSource{features: []models.LocationFeature{{ID: "a"}}}
	store := NewStore(src)

	_, err := store.Load()
	require.NoError(t, err)

	store.Reload()
	_, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, src.loads)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sampleGeoJSON), 0o644))

	features, err := (&FileSource{Path: path}).Load()
	require.NoError(t, err)
	assert.Len(t, features, 3)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope.geojson")}).Load()
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestRepositorySource_EmptySnapshot(t *testing.T) {
	src := &RepositorySource{Repo: &fakeRepo{}}
	_, err := src.Load()
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

type fakeRepo struct{}

func (r *fakeRepo) List() ([]models.LocationFeature, error) { return nil, nil }
