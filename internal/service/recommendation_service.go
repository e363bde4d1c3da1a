package service

import (
	"github.com/openlot/openlot-backend-go/internal/classifier"
	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/models"
	"github.com/openlot/openlot-backend-go/internal/ranker"
)

// RecommendationService handles the free-text path: classify the idea, then
// rank every location for the resolved category.
type RecommendationService struct {
	store *dataset.Store
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(store *dataset.Store) *RecommendationService {
	return &RecommendationService{store: store}
}

// Recommend classifies the query and returns the ranked top locations for
// the resolved category. The only error path is an unavailable dataset;
// classification itself cannot fail.
func (s *RecommendationService) Recommend(query string) (classifier.Result, []models.RankedResult, error) {
	result := classifier.Classify(query)

	locations, err := s.store.Load()
	if err != nil {
		return result, nil, err
	}

	return result, ranker.RankForCategory(locations, result.Category), nil
}

// RankForCategory ranks locations for an explicit category, bypassing the
// classifier. Used when the frontend already knows the category.
func (s *RecommendationService) RankForCategory(category models.Category) ([]models.RankedResult, error) {
	locations, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return ranker.RankForCategory(locations, category), nil
}
