package ur

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver    = errors.New("game is already over")
	ErrNoRoll      = errors.New("no dice value is pending")
	ErrRollPending = errors.New("a roll is already pending")
	ErrInvalidRoll = errors.New("dice value out of range")
	ErrNoDice      = errors.New("no dice attached to the game")
)

// Phase is the turn state derived from the dice value and the game-over flag.
type Phase uint8

const (
	AwaitingRoll Phase = iota
	AwaitingMove
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingRoll:
		return "awaiting_roll"
	case AwaitingMove:
		return "awaiting_move"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the full rules state of one match. It is not safe for concurrent
// use; a single controller drives it one operation at a time.
type Game struct {
	board [BoardSize]Player

	// indexed by Player; slot 0 is unused
	start [Dark + 1]uint8
	off   [Dark + 1]uint8

	current Player
	dice    uint8
	over    bool
	winner  Player

	roller Roller
}

// New returns a game with full reserves, an empty board and Light to move.
func New(roller Roller) *Game {
	game := &Game{
		current: Light,
		roller:  roller,
	}
	game.start[Light] = PiecesPerPlayer
	game.start[Dark] = PiecesPerPlayer

	return game
}

// Reset puts the game back into its initial configuration, keeping the dice.
func (that *Game) Reset() {
	*that = *New(that.roller)
}

func (that *Game) CurrentPlayer() Player {
	return that.current
}

// DiceValue is 0 while no roll is pending.
func (that *Game) DiceValue() uint8 {
	return that.dice
}

func (that *Game) IsOver() bool {
	return that.over
}

func (that *Game) Winner() (Player, bool) {
	return that.winner, that.over
}

func (that *Game) Phase() Phase {
	switch {
	case that.over:
		return GameOver
	case that.dice == 0:
		return AwaitingRoll
	default:
		return AwaitingMove
	}
}

func (that *Game) PiecesInStart(player Player) int {
	if !player.IsValid() {
		return 0
	}
	return int(that.start[player])
}

func (that *Game) PiecesOff(player Player) int {
	if !player.IsValid() {
		return 0
	}
	return int(that.off[player])
}

func (that *Game) PiecesOnBoard(player Player) int {
	if !player.IsValid() {
		return 0
	}

	count := 0
	for _, owner := range that.board {
		if owner == player {
			count++
		}
	}

	return count
}

// Board returns a copy of the squares; each entry is the owner's cell code.
func (that *Game) Board() [BoardSize]Player {
	return that.board
}

// BoardIndexToPath maps a square to player's path position, see ToPath.
func (that *Game) BoardIndexToPath(index int, player Player) (int, bool) {
	return ToPath(index, player)
}

// SquareInfo reports who occupies the square and whether the current player
// can move the piece standing on it.
func (that *Game) SquareInfo(index int) (Player, bool) {
	if index < 0 || index >= BoardSize {
		return NoPlayer, false
	}

	occupant := that.board[index]
	if occupant != that.current {
		return occupant, false
	}

	path, ok := ToPath(index, that.current)
	if !ok {
		return occupant, false
	}

	return occupant, that.CanMove(path)
}

func (that *Game) PlayerName() string {
	return that.current.String()
}

func (that *Game) StatusMessage() string {
	switch {
	case that.over && that.winner.IsValid():
		return fmt.Sprintf("Game Over! %s Player Wins!", that.winner)
	case that.over:
		return "Game Over!"
	case that.dice == 0:
		return ""
	default:
		return "Select a piece to move"
	}
}

// RollDice stores a fresh roll for the current player. A pending roll is not
// overwritten: the pending value is returned together with ErrRollPending.
func (that *Game) RollDice() (uint8, error) {
	if that.over {
		return 0, ErrGameOver
	}

	if that.dice != 0 {
		return that.dice, ErrRollPending
	}

	if that.roller == nil {
		return 0, ErrNoDice
	}

	value := that.roller.Roll()
	if value < MinRoll || value > MaxRoll {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRoll, value)
	}

	that.dice = value

	return value, nil
}

// PassTurn gives up the pending roll and hands the turn to the opponent. The
// caller decides when no move is available; the game does not pass by itself.
func (that *Game) PassTurn() error {
	if that.over {
		return ErrGameOver
	}

	if that.dice == 0 {
		return ErrNoRoll
	}

	that.dice = 0
	that.switchPlayer()

	return nil
}

func (that *Game) switchPlayer() {
	that.current = that.current.Opponent()
}

// checkWinner ends the game once a side has borne off every piece.
func (that *Game) checkWinner() {
	for _, player := range [...]Player{Light, Dark} {
		if that.off[player] == PiecesPerPlayer {
			that.over = true
			that.winner = player
			return
		}
	}
}
