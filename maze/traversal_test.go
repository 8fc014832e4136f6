package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring is a 3x3 loop of passages around a single pillar
const ring = `#####
#...#
#.#.#
#...#
#####`

func loadGrid(t *testing.T, board string) *Grid {
	t.Helper()

	grid, err := (&Snapshot{SerializedBoard: board}).Grid()
	require.NoError(t, err)
	return grid
}

func TestTraverseExpandsRightDownLeftUp(t *testing.T) {
	grid := loadGrid(t, ring)

	order := Traverse(grid, Start)

	assert.Equal(t, []Point{
		{1, 1}, {1, 2}, {2, 1}, {1, 3}, {3, 1}, {2, 3}, {3, 2}, {3, 3},
	}, order)
}

func TestTraverseVisitsEveryPassageOnce(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		grid, err := GenerateSeeded(30, 40, seed)
		require.NoError(t, err)

		order := Traverse(grid, Start)

		assert.Len(t, order, grid.NumPassages())
		assert.ElementsMatch(t, grid.Passages(), order)
		assert.Equal(t, Start, order[0])
	}
}

func TestTraverseOrdersByDistance(t *testing.T) {
	grid, err := GenerateSeeded(15, 21, 3)
	require.NoError(t, err)

	order := Traverse(grid, Start)

	previous := 0
	for _, cell := range order {
		distance := len(ShortestPath(grid, Start, cell)) - 1
		assert.GreaterOrEqual(t, distance, previous, "cell %v", cell)
		previous = distance
	}
}

func TestDeriveMilestones(t *testing.T) {
	grid := loadGrid(t, ring)
	order := Traverse(grid, Start)

	milestones := DeriveMilestones(order)

	assert.Equal(t, [NumCheckpoints]Point{{1, 2}, {2, 1}, {1, 3}, {3, 1}, {2, 3}}, milestones.Checkpoints)
	assert.Equal(t, Point{3, 2}, milestones.Goal)
	assert.Equal(t, append(milestones.Checkpoints[:], milestones.Goal), milestones.All())
}

func TestDeriveMilestonesCollapsesOnShortTraversals(t *testing.T) {
	order := []Point{{1, 1}, {1, 2}, {1, 3}, {2, 3}}

	milestones := DeriveMilestones(order)

	for _, milestone := range milestones.All() {
		assert.Equal(t, order[0], milestone)
	}
	assert.Equal(t, [NumCheckpoints + 1]int{}, MilestoneIndexes(len(order)))
}

func TestDeriveMilestonesOfEmptyTraversal(t *testing.T) {
	assert.Equal(t, Milestones{}, DeriveMilestones(nil))
}

func TestMilestonesIncreaseWithDistance(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		grid, err := GenerateSeeded(30, 40, seed)
		require.NoError(t, err)
		order := Traverse(grid, Start)
		require.GreaterOrEqual(t, len(order), 7)

		indexes := MilestoneIndexes(len(order))
		for i := 1; i < len(indexes); i++ {
			assert.Less(t, indexes[i-1], indexes[i])
		}

		milestones := DeriveMilestones(order)
		goalDistance := len(ShortestPath(grid, Start, milestones.Goal))
		for i, checkpoint := range milestones.Checkpoints {
			assert.Equal(t, order[indexes[i]], checkpoint)
			assert.LessOrEqual(t, len(ShortestPath(grid, Start, checkpoint)), goalDistance)
		}
	}
}

func TestShortestPath(t *testing.T) {
	grid := loadGrid(t, ring)

	path := ShortestPath(grid, Point{1, 1}, Point{3, 3})
	assert.Equal(t, []Point{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}}, path)

	assert.Equal(t, []Point{{1, 1}}, ShortestPath(grid, Start, Start))
	assert.Nil(t, ShortestPath(grid, Start, Point{2, 2}))
	assert.Nil(t, ShortestPath(grid, Start, Point{9, 9}))
}

func TestShortestPathFollowsCorridors(t *testing.T) {
	grid, err := GenerateSeeded(21, 31, 11)
	require.NoError(t, err)
	order := Traverse(grid, Start)
	target := order[len(order)-1]

	path := ShortestPath(grid, Start, target)

	require.NotEmpty(t, path)
	assert.Equal(t, Start, path[0])
	assert.Equal(t, target, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		step := Point{path[i].Row - path[i-1].Row, path[i].Col - path[i-1].Col}
		assert.Contains(t, neighborOffsets[:], step)
		assert.True(t, grid.IsPassage(path[i]))
	}
}
