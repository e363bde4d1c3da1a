// Package session owns the selection state shared by the list page and the
// map page. At most one location is selected per session; both surfaces
// render from the same panel view, so they cannot drift apart.
package session

import (
	"fmt"
	"sync"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// DefaultMaxCards is the recommendation-card cap when config does not
// override it.
const DefaultMaxCards = 3

// SettleDelayMS is the hint returned to the frontend for the scroll-into-view
// affordance after a selection. Purely a UX timing hint.
const SettleDelayMS = 300

// Card is one recommendation slot in the detail panel. Slots past the
// available recommendations are emitted hidden so the frontend never shows
// data left over from a previous selection.
type Card struct {
	Slot     int             `json:"slot"`
	Visible  bool            `json:"visible"`
	Category models.Category `json:"category,omitempty"`
	Score    int             `json:"score"`
	Severity string          `json:"severity,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// Popup is the map popup content: address line, optional secondary line,
// coordinate footer.
type Popup struct {
	AddressLine   string `json:"address_line"`
	SecondaryLine string `json:"secondary_line,omitempty"`
	Footer        string `json:"footer"`
}

// Panel is the full view model for the detail surface. It is rebuilt
// wholesale on every select, deselect, and read.
type Panel struct {
	Visible       bool    `json:"visible"`
	LocationID    string  `json:"location_id,omitempty"`
	Address       string  `json:"address,omitempty"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
	Popup         *Popup  `json:"popup,omitempty"`
	Cards         []Card  `json:"cards,omitempty"`
	SettleDelayMS int     `json:"settle_delay_ms,omitempty"`
}

// Manager tracks the selected location per session. Only the selected
// feature is stored; panels are derived fresh on every call so severity and
// card contents are always recomputed, never cached.
type Manager struct {
	mu       sync.RWMutex
	maxCards int
	selected map[string]*models.LocationFeature
}

// NewManager creates a manager with the given card cap (DefaultMaxCards when
// maxCards is not positive).
func NewManager(maxCards int) *Manager {
	if maxCards <= 0 {
		maxCards = DefaultMaxCards
	}
	return &Manager{
		maxCards: maxCards,
		selected: make(map[string]*models.LocationFeature),
	}
}

// Select makes loc the session's current selection and returns the rebuilt
// panel. Every card slot is overwritten; nothing from a prior selection
// survives, whether or not Deselect ran in between.
func (m *Manager) Select(sessionID string, loc *models.LocationFeature) Panel {
	m.mu.Lock()
	m.selected[sessionID] = loc
	m.mu.Unlock()

	return m.buildPanel(loc)
}

// Deselect clears the session's selection and returns the hidden panel. Card
// contents are not individually cleared here; the next Select overwrites
// them all.
func (m *Manager) Deselect(sessionID string) Panel {
	m.mu.Lock()
	delete(m.selected, sessionID)
	m.mu.Unlock()

	return Panel{Visible: false}
}

// Panel returns the current view for the session, hidden when nothing is
// selected.
func (m *Manager) Panel(sessionID string) Panel {
	m.mu.RLock()
	loc := m.selected[sessionID]
	m.mu.RUnlock()

	if loc == nil {
		return Panel{Visible: false}
	}
	return m.buildPanel(loc)
}

func (m *Manager) buildPanel(loc *models.LocationFeature) Panel {
	cards := make([]Card, m.maxCards)
	for i := range cards {
		if i < len(loc.TopRecommendations) {
			rec := loc.TopRecommendations[i]
			cards[i] = Card{
				Slot:     i,
				Visible:  true,
				Category: rec.Category,
				Score:    rec.Score,
				Severity: models.SeverityForScore(rec.Score),
				Reason:   rec.Reason,
			}
		} else {
			cards[i] = Card{Slot: i, Visible: false}
		}
	}

	return Panel{
		Visible:       true,
		LocationID:    loc.ID,
		Address:       loc.DisplayAddress(),
		Lat:           loc.Lat,
		Lng:           loc.Lng,
		Popup:         buildPopup(loc),
		Cards:         cards,
		SettleDelayMS: SettleDelayMS,
	}
}

func buildPopup(loc *models.LocationFeature) *Popup {
	line := loc.AddressLabel
	if line == "" {
		line = models.VacantLotLabel
	}

	p := &Popup{
		AddressLine: line,
		Footer:      fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lng),
	}
	if loc.Name != "" && loc.Name != line {
		p.SecondaryLine = loc.Name
	}
	return p
}
