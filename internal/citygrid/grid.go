// Package citygrid models the 8×8 block city shown during a run and derives
// its activity level from layered simplex noise.
package citygrid

import (
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/urban-sandbox/internal/entropy"
	"github.com/talgya/urban-sandbox/internal/narrative"
)

// Grid dimensions.
const (
	Width  = 8
	Height = 8
	Blocks = Width * Height
)

// BlockType is the land use of a block.
type BlockType string

const (
	BlockResidential BlockType = "residential"
	BlockCommercial  BlockType = "commercial"
	BlockIndustrial  BlockType = "industrial"
	BlockGovernment  BlockType = "government"
)

// BlockTypes lists the types a block can be assigned.
var BlockTypes = []BlockType{BlockResidential, BlockCommercial, BlockIndustrial, BlockGovernment}

// Block is one cell of the grid.
type Block struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Type      BlockType `json:"type"`
	Intensity float64   `json:"intensity"` // 0–1, from the last pulse
}

// Level is the city-wide activity band.
type Level string

const (
	LevelInactive Level = "inactive"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Activity thresholds on mean intensity.
const (
	highAbove     = 0.7
	moderateAbove = 0.4
)

// Noise shaping, same octave scheme as terrain generation.
const (
	octaves     = 3
	frequency   = 0.18
	persistence = 0.5
	stepScale   = 0.9
)

// Grid is a block layout plus the current activity level.
type Grid struct {
	mu     sync.RWMutex
	blocks []Block
	noise  opensimplex.Noise
	level  Level
	step   int
}

// New lays out the blocks using src and seeds the noise field with seed.
func New(src entropy.Source, seed int64) *Grid {
	blocks := make([]Block, 0, Blocks)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			blocks = append(blocks, Block{
				X:    x,
				Y:    y,
				Type: BlockTypes[src.Intn(len(BlockTypes))],
			})
		}
	}
	return &Grid{
		blocks: blocks,
		noise:  opensimplex.NewNormalized(seed),
		level:  LevelInactive,
	}
}

// Pulse advances the noise field by one step, refreshes every block's
// intensity and returns the new activity level.
func (g *Grid) Pulse() Level {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.step++
	t := float64(g.step) * stepScale
	total := 0.0
	for i := range g.blocks {
		b := &g.blocks[i]
		b.Intensity = octaveNoise(g.noise, float64(b.X), float64(b.Y), t)
		total += b.Intensity
	}
	g.level = LevelFor(total / float64(len(g.blocks)))
	return g.level
}

// Reset returns the grid to its initial inactive state.
func (g *Grid) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.step = 0
	g.level = LevelInactive
	for i := range g.blocks {
		g.blocks[i].Intensity = 0
	}
}

// Level returns the activity level from the last pulse.
func (g *Grid) Level() Level {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.level
}

// Blocks returns a copy of the block layout.
func (g *Grid) Blocks() []Block {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]Block(nil), g.blocks...)
}

// Counts tallies blocks per type.
func (g *Grid) Counts() map[BlockType]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[BlockType]int, len(BlockTypes))
	for _, b := range g.blocks {
		out[b.Type]++
	}
	return out
}

// LevelFor maps a mean intensity to an activity level.
func LevelFor(intensity float64) Level {
	switch {
	case intensity > highAbove:
		return LevelHigh
	case intensity > moderateAbove:
		return LevelModerate
	default:
		return LevelLow
	}
}

// Label localizes an activity level.
func Label(l narrative.Locale, level Level) string {
	labels := narrative.LabelsFor(l)
	switch level {
	case LevelHigh:
		return labels.ActivityHigh
	case LevelModerate:
		return labels.ActivityModerate
	case LevelLow:
		return labels.ActivityLow
	default:
		return labels.ActivityInactive
	}
}

// octaveNoise samples 3D noise with the block position in x/y and time in z,
// normalized back into [0,1].
func octaveNoise(noise opensimplex.Noise, x, y, t float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := frequency

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(x*freq, y*freq, t*freq) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		freq *= 2
	}

	return total / maxVal
}
