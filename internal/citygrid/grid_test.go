package citygrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/urban-sandbox/internal/entropy"
	"github.com/talgya/urban-sandbox/internal/narrative"
)

func TestNewGridLayout(t *testing.T) {
	g := New(entropy.NewSeeded(3), 3)
	blocks := g.Blocks()
	require.Len(t, blocks, Blocks)
	assert.Equal(t, LevelInactive, g.Level())

	total := 0
	for _, n := range g.Counts() {
		total += n
	}
	assert.Equal(t, Blocks, total)

	for i, b := range blocks {
		assert.Equal(t, i%Width, b.X)
		assert.Equal(t, i/Width, b.Y)
		assert.Contains(t, BlockTypes, b.Type)
		assert.Zero(t, b.Intensity)
	}
}

func TestPulseIntensityInRange(t *testing.T) {
	g := New(entropy.NewSeeded(9), 9)
	for step := 0; step < 10; step++ {
		level := g.Pulse()
		assert.NotEqual(t, LevelInactive, level)
		assert.Equal(t, level, g.Level())
		for _, b := range g.Blocks() {
			assert.GreaterOrEqual(t, b.Intensity, 0.0)
			assert.LessOrEqual(t, b.Intensity, 1.0)
		}
	}

	g.Reset()
	assert.Equal(t, LevelInactive, g.Level())
}

func TestPulseIsDeterministic(t *testing.T) {
	a := New(entropy.NewSeeded(11), 11)
	b := New(entropy.NewSeeded(11), 11)
	for i := 0; i < 4; i++ {
		assert.Equal(t, a.Pulse(), b.Pulse())
	}
	assert.Equal(t, a.Blocks(), b.Blocks())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelHigh, LevelFor(0.71))
	assert.Equal(t, LevelModerate, LevelFor(0.7))
	assert.Equal(t, LevelModerate, LevelFor(0.41))
	assert.Equal(t, LevelLow, LevelFor(0.4))
	assert.Equal(t, LevelLow, LevelFor(0))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "High Activity", Label(narrative.English, LevelHigh))
	assert.Equal(t, "中等活動度", Label(narrative.Chinese, LevelModerate))
	assert.Equal(t, "Inactive", Label(narrative.English, LevelInactive))
}
