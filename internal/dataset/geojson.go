// Package dataset loads the pre-scored vacant-lot feature collection and
// exposes it as immutable LocationFeatures. Scores are produced by the
// offline pipeline; this package only parses and caches them.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// ErrDataUnavailable is returned when the dataset cannot be fetched or
// parsed. Loads are all-or-nothing: callers never see a partial dataset.
var ErrDataUnavailable = errors.New("dataset unavailable")

// FeatureCollection mirrors the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature with point geometry and the score
// properties attached by the scoring pipeline.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry holds the point coordinates as [lng, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Properties carries the pipeline output per parcel. Either score array may
// be absent, null, or embedded as a JSON-encoded string; all are tolerated.
type Properties struct {
	ID                 any       `json:"id"`
	HouseNumber        string    `json:"addr:housenumber"`
	Street             string    `json:"addr:street"`
	Name               string    `json:"name"`
	AllScores          ScoreList `json:"all_scores_json"`
	TopRecommendations ScoreList `json:"top_recommendations_json"`
}

// ScoreList decodes a property that is either a JSON array of score entries
// or a string containing that array (the pipeline serializes per-row JSON
// into GeoJSON string properties).
type ScoreList []models.CategoryScore

func (s *ScoreList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	// String-embedded form: unquote, then decode the inner array.
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if strings.TrimSpace(inner) == "" {
			*s = nil
			return nil
		}
		data = []byte(inner)
	}

	var entries []models.CategoryScore
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s = entries
	return nil
}

// ParseFeatureCollection decodes raw GeoJSON bytes into LocationFeatures.
// Any malformed feature fails the whole parse with ErrDataUnavailable.
func ParseFeatureCollection(raw []byte) ([]models.LocationFeature, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	features := make([]models.LocationFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			return nil, fmt.Errorf("%w: feature %d has no point geometry", ErrDataUnavailable, i)
		}

		loc := models.LocationFeature{
			ID: featureID(f.Properties.ID, i),
			// GeoJSON order is [lng, lat]; round to the 4-decimal display
			// precision so deep-link tolerance matching lines up.
			Lng:                roundCoord(f.Geometry.Coordinates[0]),
			Lat:                roundCoord(f.Geometry.Coordinates[1]),
			AddressLabel:       addressLabel(f.Properties),
			Name:               strings.TrimSpace(f.Properties.Name),
			Scores:             clampScores(f.Properties.AllScores),
			TopRecommendations: clampScores(f.Properties.TopRecommendations),
		}
		features = append(features, loc)
	}

	return features, nil
}

// featureID normalizes the id property, which OSM exports sometimes encode
// as a number. Features with no id get a stable index-based one.
func featureID(id any, index int) string {
	switch v := id.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("lot-%d", index)
}

// addressLabel builds "housenumber street". An empty result means the parcel
// displays as a vacant lot; the feature name, if any, is kept separately for
// the popup's secondary line.
func addressLabel(p Properties) string {
	street := strings.TrimSpace(p.Street)
	if street == "" {
		return ""
	}
	if num := strings.TrimSpace(p.HouseNumber); num != "" {
		return num + " " + street
	}
	return street
}

func clampScores(scores ScoreList) []models.CategoryScore {
	out := make([]models.CategoryScore, len(scores))
	for i, s := range scores {
		if s.Score < 0 {
			s.Score = 0
		}
		if s.Score > 100 {
			s.Score = 100
		}
		out[i] = s
	}
	return out
}

func roundCoord(v float64) float64 {
	if v < 0 {
		return float64(int64(v*10000-0.5)) / 10000
	}
	return float64(int64(v*10000+0.5)) / 10000
}
