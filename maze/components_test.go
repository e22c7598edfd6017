package maze_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// TestComponents_TwoRegions splits a 7×5 grid with a solid wall column.
//
//	#######
//	#..#..#
//	#..#..#
//	#..#.##
//	#######
//
// Expect two components of sizes 6 and 5.
func TestComponents_TwoRegions(t *testing.T) {
	m, err := maze.FromRows([]string{
		"#######",
		"#..#..#",
		"#..#..#",
		"#..#.##",
		"#######",
	})
	require.NoError(t, err)

	comps := m.Components()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{5, 6}, sizes)
	assert.Equal(t, maze.Cell{X: 1, Y: 1}, comps[0][0], "first component starts at first passable cell")
}

func TestComponents_NoPassable(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	assert.Empty(t, m.Components())
}

func TestFarthestFrom_Corridor(t *testing.T) {
	m, err := maze.FromRows([]string{
		"#######",
		"#.....#",
		"#####.#",
		"#.....#",
		"#######",
	})
	require.NoError(t, err)

	far, dist, ok := m.FarthestFrom(maze.Cell{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, maze.Cell{X: 1, Y: 3}, far)
	assert.Equal(t, 10, dist)
}

func TestFarthestFrom_Blocked(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	_, _, ok := m.FarthestFrom(maze.Cell{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestFarthestFrom_Isolated(t *testing.T) {
	m, err := maze.FromRows([]string{"###", "#.#", "###"})
	require.NoError(t, err)
	far, dist, ok := m.FarthestFrom(maze.Cell{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, maze.Cell{X: 1, Y: 1}, far)
	assert.Zero(t, dist)
}
