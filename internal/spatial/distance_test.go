package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Capitol Square to Camp Randall, roughly 2.4 km.
	d := HaversineDistance(43.0747, -89.3841, 43.0700, -89.4124)
	assert.InDelta(t, 2360, d, 200)

	assert.Zero(t, HaversineDistance(43.0747, -89.3841, 43.0747, -89.3841))
}
