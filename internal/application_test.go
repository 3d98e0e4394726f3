package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDice(t *testing.T) {
	t.Run("Fixed seed repeats", func(t *testing.T) {
		first, err := newDice(42)
		require.NoError(t, err)
		second, err := newDice(42)
		require.NoError(t, err)

		for range 20 {
			assert.Equal(t, first.Roll(), second.Roll())
		}
	})

	t.Run("Zero seed draws a crypto seed", func(t *testing.T) {
		dice, err := newDice(0)
		require.NoError(t, err)

		roll := dice.Roll()
		assert.GreaterOrEqual(t, roll, uint8(1))
		assert.LessOrEqual(t, roll, uint8(4))
	})
}
