package repository

import (
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// LocationRepository handles database operations for imported location features
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Import replaces the stored dataset with the given feature sequence. The
// position column preserves dataset iteration order, which ranking tie-breaks
// and deep-link resolution both depend on.
func (r *LocationRepository) Import(features []models.LocationFeature) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM locations"); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO locations
		(id, lat, lng, address_label, name, all_scores_json, top_recommendations_json, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range features {
		scores, err := json.Marshal(f.Scores)
		if err != nil {
			return fmt.Errorf("failed to encode scores for %s: %w", f.ID, err)
		}
		top, err := json.Marshal(f.TopRecommendations)
		if err != nil {
			return fmt.Errorf("failed to encode recommendations for %s: %w", f.ID, err)
		}

		if _, err := stmt.Exec(f.ID, f.Lat, f.Lng, f.AddressLabel, f.Name, string(scores), string(top), i); err != nil {
			return fmt.Errorf("failed to insert location %s: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// List returns all stored features in dataset order.
func (r *LocationRepository) List() ([]models.LocationFeature, error) {
	rows, err := r.db.Query(`SELECT id, lat, lng, address_label, name,
		all_scores_json, top_recommendations_json
		FROM locations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var features []models.LocationFeature
	for rows.Next() {
		var f models.LocationFeature
		var scores, top string
		if err := rows.Scan(&f.ID, &f.Lat, &f.Lng, &f.AddressLabel, &f.Name, &scores, &top); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		if err := json.Unmarshal([]byte(scores), &f.Scores); err != nil {
			return nil, fmt.Errorf("failed to decode scores for %s: %w", f.ID, err)
		}
		if err := json.Unmarshal([]byte(top), &f.TopRecommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations for %s: %w", f.ID, err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}

	return features, nil
}

// Count returns the number of stored features.
func (r *LocationRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM locations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return n, nil
}
