package ur

import "golang.org/x/exp/rand"

const (
	MinRoll = 1
	MaxRoll = 4

	diceTrials = 4
)

// Roller produces move distances. The game depends on it instead of a global
// random source so tests can script every roll.
type Roller interface {
	Roll() uint8
}

// Entropy is the randomness capability consumed by Dice.
type Entropy interface {
	Uint64() uint64
}

// Dice throws four binary (tetrahedral) dice and counts the marked tips.
type Dice struct {
	entropy Entropy
}

func NewDice(entropy Entropy) *Dice {
	return &Dice{entropy: entropy}
}

// NewSeededDice builds Dice over a PCG source. Equal seeds yield equal rolls.
func NewSeededDice(seed uint64) *Dice {
	return NewDice(rand.New(rand.NewSource(seed)))
}

// Roll returns a value in [MinRoll, MaxRoll]. A throw with no marked tips
// counts as one so that every roll can enter a piece.
func (that *Dice) Roll() uint8 {
	var total uint8
	for range diceTrials {
		total += uint8(that.entropy.Uint64() >> 63)
	}

	if total == 0 {
		return MinRoll
	}

	return total
}
