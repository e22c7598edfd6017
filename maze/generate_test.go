package maze_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// requireSealedBorder asserts every border cell is Blocked.
func requireSealedBorder(t *testing.T, m *maze.Maze) {
	t.Helper()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			if m.IsBorder(c) {
				require.Equal(t, maze.Blocked, m.State(c), "border cell %v", c)
			}
		}
	}
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{2, 5}, {5, 2}, {0, 0}, {-3, 9}} {
		_, err := maze.Generate(dims[0], dims[1], maze.WithSeed(1))
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestGenerate_Smallest(t *testing.T) {
	m, err := maze.Generate(3, 3, maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1, m.PassableCount())
	assert.True(t, m.IsPassable(maze.Cell{X: 1, Y: 1}))
}

// TestGenerate_Structure checks the structural guarantees over many sizes
// and seeds: sealed border, open origin, single connected region.
func TestGenerate_Structure(t *testing.T) {
	for w := 3; w <= 31; w += 2 {
		for _, h := range []int{3, 4, 8, 11, 21} {
			for seed := int64(0); seed < 4; seed++ {
				name := fmt.Sprintf("%dx%d/seed=%d", w, h, seed)
				m, err := maze.Generate(w, h, maze.WithSeed(seed))
				require.NoError(t, err, name)

				assert.Equal(t, w, m.Width(), name)
				assert.Equal(t, h, m.Height(), name)
				assert.True(t, m.IsPassable(maze.Cell{X: 1, Y: 1}), name)
				requireSealedBorder(t, m)
				assert.Len(t, m.Components(), 1, name)

				_, ok := m.Start()
				assert.False(t, ok, "generated mazes carry no endpoints")
			}
		}
	}
}

func TestGenerate_EvenDimensions(t *testing.T) {
	m, err := maze.Generate(10, 6, maze.WithSeed(3))
	require.NoError(t, err)
	requireSealedBorder(t, m)
	assert.Len(t, m.Components(), 1)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(25, 17, maze.WithSeed(42))
	require.NoError(t, err)
	b, err := maze.Generate(25, 17, maze.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := maze.Generate(25, 17, maze.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String(), "WithRand and WithSeed agree for the same seed")
}

// TestGenerate_PerfectMaze verifies that without extra openings the carve is
// a spanning tree over the odd lattice: N lattice cells joined by N-1
// intermediate cells.
func TestGenerate_PerfectMaze(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {5, 5}, {7, 11}, {21, 21}, {31, 15}} {
		w, h := dims[0], dims[1]
		lattice := ((w - 1) / 2) * ((h - 1) / 2)
		for seed := int64(0); seed < 3; seed++ {
			m, err := maze.Generate(w, h, maze.WithSeed(seed), maze.WithExtraPathProbability(0))
			require.NoError(t, err)
			assert.Equal(t, 2*lattice-1, m.PassableCount(), "dims %v seed %d", dims, seed)
		}
	}
}

func TestGenerate_ExtraOpeningsOnlyAdd(t *testing.T) {
	perfect, err := maze.Generate(21, 21, maze.WithSeed(9), maze.WithExtraPathProbability(0))
	require.NoError(t, err)
	loopy, err := maze.Generate(21, 21, maze.WithSeed(9), maze.WithExtraPathProbability(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, loopy.PassableCount(), 2*100-1)
	assert.Equal(t, 2*100-1, perfect.PassableCount())
}

func TestGenerateOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
	assert.Panics(t, func() { maze.WithExtraPathProbability(-0.1) })
	assert.Panics(t, func() { maze.WithExtraPathProbability(1.5) })
	assert.NotPanics(t, func() { maze.WithExtraPathProbability(0) })
	assert.NotPanics(t, func() { maze.WithExtraPathProbability(1) })
}

func TestGenerate_Unseeded(t *testing.T) {
	m, err := maze.Generate(9, 9)
	require.NoError(t, err)
	assert.Len(t, m.Components(), 1)
}
