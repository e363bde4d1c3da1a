package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, SeverityHigh},
		{80, SeverityHigh},
		{79, SeverityMedium},
		{50, SeverityMedium},
		{49, SeverityLow},
		{0, SeverityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityForScore(tt.score), "score %d", tt.score)
	}
}

func TestDisplayAddress(t *testing.T) {
	f := LocationFeature{AddressLabel: "402 E Washington Ave", Lat: 43.0795, Lng: -89.3801}
	assert.Equal(t, "402 E Washington Ave (43.0795, -89.3801)", f.DisplayAddress())

	f.AddressLabel = ""
	assert.Equal(t, "Vacant Lot (43.0795, -89.3801)", f.DisplayAddress())
}

func TestCategories_CatchAllLast(t *testing.T) {
	cats := Categories()
	assert.Equal(t, CategoryGeneral, cats[len(cats)-1])
	assert.Len(t, cats, len(KeywordTable)+1)
}
