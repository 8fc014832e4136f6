package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoresGrid(t *testing.T) {
	grid, err := GenerateSeeded(11, 15, 42)
	require.NoError(t, err)

	loaded, err := LoadSnapshot(NewSnapshot(grid, 42).Serialize())
	require.NoError(t, err)
	restored, err := loaded.Grid()
	require.NoError(t, err)

	assert.Equal(t, int64(42), loaded.Seed)
	assert.True(t, grid.Equal(restored))
}

func TestSnapshotSerializesBoardRows(t *testing.T) {
	grid := NewGrid(3, 4)
	grid.Set(Start, Passage)
	grid.Set(Point{1, 2}, Passage)

	snapshot := NewSnapshot(grid, 7)

	assert.Equal(t, "####\n#..#\n####", snapshot.SerializedBoard)
}

func TestInvalidSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{"too small", "###\n#.#"},
		{"ragged", "#####\n#.#\n#####"},
		{"open border", "#.###\n#...#\n#####"},
		{"unknown cell", "#####\n#.x.#\n#####"},
		{"walled start", "#####\n##..#\n#####"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Snapshot{SerializedBoard: tt.board}).Grid()
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestLoadSnapshotRejectsBadYAML(t *testing.T) {
	_, err := LoadSnapshot("seed: [not a number")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
