package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerrainEnvelopeBoundaries(t *testing.T) {
	t.Parallel()

	terrain := Terrain{Pitch: 0.2, Roll: 0.1}
	cases := []struct {
		step   int
		tilted bool
	}{
		{0, false},
		{35, false},
		{36, true}, // first fifth of 180 steps ends here
		{100, true},
		{143, true},
		{144, false}, // last fifth begins here
		{179, false},
	}
	for _, tc := range cases {
		pitch, roll := terrain.At(tc.step, 180)
		if tc.tilted {
			assert.Equal(t, 0.2, pitch, "step %d", tc.step)
			assert.Equal(t, 0.1, roll, "step %d", tc.step)
		} else {
			assert.Zero(t, pitch, "step %d", tc.step)
			assert.Zero(t, roll, "step %d", tc.step)
		}
	}
}

func TestTerrainZeroValueStaysFlat(t *testing.T) {
	t.Parallel()

	var terrain Terrain
	assert.True(t, terrain.Flat())
	for _, i := range []int{0, 90, 179} {
		pitch, roll := terrain.At(i, 180)
		assert.Zero(t, pitch)
		assert.Zero(t, roll)
	}
}

func TestTerrainShortRun(t *testing.T) {
	t.Parallel()

	terrain := Terrain{Pitch: 0.3}
	assert.False(t, terrain.Flat())

	// lo truncates to 0 and hi to 3, so only the final step is flat.
	for i := 0; i < 3; i++ {
		pitch, _ := terrain.At(i, 4)
		assert.Equal(t, 0.3, pitch, "step %d", i)
	}
	pitch, _ := terrain.At(3, 4)
	assert.Zero(t, pitch)
}

func TestTerrainZeroLengthRun(t *testing.T) {
	t.Parallel()

	pitch, roll := Terrain{Pitch: 0.2, Roll: 0.1}.At(0, 0)
	assert.Zero(t, pitch)
	assert.Zero(t, roll)
}
