package service

import (
	"fmt"

	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/models"
	"github.com/openlot/openlot-backend-go/internal/resolver"
	"github.com/openlot/openlot-backend-go/internal/session"
)

// LocationService handles the map path: feature listing, deep-link
// resolution, and the shared selection state.
type LocationService struct {
	store    *dataset.Store
	sessions *session.Manager
}

// NewLocationService creates a new location service
func NewLocationService(store *dataset.Store, sessions *session.Manager) *LocationService {
	return &LocationService{store: store, sessions: sessions}
}

// List returns every feature in dataset order.
func (s *LocationService) List() ([]models.LocationFeature, error) {
	return s.store.Load()
}

// SelectByID runs the selection path for a direct map click.
func (s *LocationService) SelectByID(sessionID, locationID string) (session.Panel, error) {
	locations, err := s.store.Load()
	if err != nil {
		return session.Panel{}, err
	}

	loc := resolver.ResolveByID(locations, locationID)
	if loc == nil {
		return session.Panel{}, fmt.Errorf("location not found: %s", locationID)
	}

	return s.sessions.Select(sessionID, loc), nil
}

// ResolveDeepLink resolves a deep-link target and, on a hit, runs the exact
// same selection path a map click does. Id lookup wins when the link carries
// one; coordinate tolerance matching is the fallback for links built from
// rounded display coordinates. A nil panel means nothing matched, which is an
// expected outcome, not an error.
func (s *LocationService) ResolveDeepLink(sessionID, locationID string, lat, lng float64) (*session.Panel, error) {
	locations, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	loc := resolver.ResolveByID(locations, locationID)
	if loc == nil {
		loc = resolver.ResolveByCoordinates(locations, lat, lng)
	}
	if loc == nil {
		return nil, nil
	}

	panel := s.sessions.Select(sessionID, loc)
	return &panel, nil
}

// Nearest returns the closest feature to the target and its distance in
// meters. Returns nil on an empty dataset.
func (s *LocationService) Nearest(lat, lng float64) (*models.LocationFeature, float64, error) {
	locations, err := s.store.Load()
	if err != nil {
		return nil, 0, err
	}

	loc, dist := resolver.Nearest(locations, lat, lng)
	return loc, dist, nil
}

// Deselect clears the session's selection (popup closed).
func (s *LocationService) Deselect(sessionID string) session.Panel {
	return s.sessions.Deselect(sessionID)
}

// Panel returns the session's current panel view.
func (s *LocationService) Panel(sessionID string) session.Panel {
	return s.sessions.Panel(sessionID)
}
