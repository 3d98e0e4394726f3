package ur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPath_Bijection(t *testing.T) {
	for _, player := range []Player{Light, Dark} {
		t.Run(player.String(), func(t *testing.T) {
			onRoute := 0

			for index := range BoardSize {
				// Given: a square on the player's route
				path, ok := ToPath(index, player)
				if !ok {
					continue
				}
				onRoute++

				// When: mapping the path position back to the board
				back, ok := ToBoardIndex(path, player)

				// Then: the same square comes back
				require.True(t, ok, "path %d of square %d", path, index)
				assert.Equal(t, index, back)
			}

			// Then: the route covers 4 entry, 8 shared and 2 exit squares
			assert.Equal(t, 14, onRoute)
		})
	}
}

func TestToBoardIndex_Routes(t *testing.T) {
	t.Run("Light route", func(t *testing.T) {
		expected := map[int]int{
			1: 3, 2: 2, 3: 1, 4: 0,
			5: 4, 6: 5, 7: 6, 8: 7,
			9: 12, 10: 13,
			11: 16, 12: 17,
			19: 15, 20: 14,
		}

		for path, index := range expected {
			got, ok := ToBoardIndex(path, Light)
			require.True(t, ok, "path %d", path)
			assert.Equal(t, index, got, "path %d", path)
		}
	})

	t.Run("Dark route", func(t *testing.T) {
		expected := map[int]int{
			1: 11, 2: 10, 3: 9, 4: 8,
			5: 4, 6: 5, 7: 6, 8: 7,
			9: 12, 10: 13,
			11: 16, 12: 17,
			19: 19, 20: 18,
		}

		for path, index := range expected {
			got, ok := ToBoardIndex(path, Dark)
			require.True(t, ok, "path %d", path)
			assert.Equal(t, index, got, "path %d", path)
		}
	})

	t.Run("Positions without a square", func(t *testing.T) {
		for _, path := range []int{-1, PathStart, 13, 14, 15, 16, 17, 18, PathOff, 99} {
			_, ok := ToBoardIndex(path, Light)
			assert.False(t, ok, "path %d", path)

			_, ok = ToBoardIndex(path, Dark)
			assert.False(t, ok, "path %d", path)
		}
	})

	t.Run("Unknown player", func(t *testing.T) {
		_, ok := ToBoardIndex(5, NoPlayer)
		assert.False(t, ok)
	})
}

func TestToPath_OpponentSquares(t *testing.T) {
	t.Run("Light is blind to Dark's entry and exit", func(t *testing.T) {
		for _, index := range []int{8, 9, 10, 11, 18, 19} {
			_, ok := ToPath(index, Light)
			assert.False(t, ok, "index %d", index)
		}
	})

	t.Run("Dark is blind to Light's entry and exit", func(t *testing.T) {
		for _, index := range []int{0, 1, 2, 3, 14, 15} {
			_, ok := ToPath(index, Dark)
			assert.False(t, ok, "index %d", index)
		}
	})

	t.Run("Out of range indices", func(t *testing.T) {
		for _, index := range []int{-1, BoardSize, 100} {
			_, ok := ToPath(index, Light)
			assert.False(t, ok, "index %d", index)
		}
	})
}

func TestEntryIndex(t *testing.T) {
	for dice := uint8(MinRoll); dice <= MaxRoll; dice++ {
		light, ok := EntryIndex(dice, Light)
		require.True(t, ok)
		assert.Equal(t, 4-int(dice), light)

		dark, ok := EntryIndex(dice, Dark)
		require.True(t, ok)
		assert.Equal(t, 12-int(dice), dark)
	}

	_, ok := EntryIndex(0, Light)
	assert.False(t, ok)

	_, ok = EntryIndex(5, Dark)
	assert.False(t, ok)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		path     int
		steps    int
		expected int
	}{
		{name: "within the entry run", path: 1, steps: 3, expected: 4},
		{name: "into the shared run", path: 4, steps: 4, expected: 8},
		{name: "onto the first exit square", path: 12, steps: 1, expected: 19},
		{name: "onto the last exit square", path: 11, steps: 3, expected: 20},
		{name: "off the board from the shared run", path: 12, steps: 3, expected: PathOff},
		{name: "exact exit", path: 20, steps: 1, expected: PathOff},
		{name: "overshooting exit", path: 19, steps: 4, expected: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Advance(tt.path, tt.steps))
		})
	}
}
