package ur

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath  = errors.New("invalid path position")
	ErrNoReserve    = errors.New("no pieces left in start reserve")
	ErrNotYourPiece = errors.New("no piece of the current player on that path position")
	ErrSelfBlocked  = errors.New("destination holds a piece of the same player")
	ErrOffRoute     = errors.New("destination is not on the player's route")
)

// noSquare marks the reserve as a source and bearing off as a destination.
const noSquare = -1

// plan is a validated move, expressed in board indices.
type plan struct {
	from int
	to   int
}

// CanMove reports whether the current player may move the piece at path with
// the pending roll. Path 0 asks about entering a piece from the reserve.
func (that *Game) CanMove(path int) bool {
	_, err := that.validateMove(path)
	return err == nil
}

// ValidMoves lists every path position CanMove accepts, the reserve first and
// then pieces in board order.
func (that *Game) ValidMoves() []int {
	moves := make([]int, 0, PiecesPerPlayer+1)

	if that.CanMove(PathStart) {
		moves = append(moves, PathStart)
	}

	for index, owner := range that.board {
		if owner != that.current {
			continue
		}

		if path, ok := ToPath(index, that.current); ok && that.CanMove(path) {
			moves = append(moves, path)
		}
	}

	return moves
}

// MakeMove validates and then executes the move of the piece at path. A
// rejected move leaves the game untouched.
func (that *Game) MakeMove(path int) error {
	move, err := that.validateMove(path)
	if err != nil {
		return fmt.Errorf("invalid move from path %d: %w", path, err)
	}

	that.apply(move)

	return nil
}

func (that *Game) validateMove(path int) (plan, error) {
	if that.over {
		return plan{}, ErrGameOver
	}

	if that.dice == 0 {
		return plan{}, ErrNoRoll
	}

	if path == PathStart {
		return that.validateEntry()
	}

	if path < PathStart || path > PathLast {
		return plan{}, ErrInvalidPath
	}

	player := that.current

	from, ok := ToBoardIndex(path, player)
	if !ok || that.board[from] != player {
		return plan{}, ErrNotYourPiece
	}

	target := Advance(path, int(that.dice))
	if target >= PathOff {
		return plan{from: from, to: noSquare}, nil
	}

	to, ok := ToBoardIndex(target, player)
	if !ok {
		return plan{}, ErrOffRoute
	}

	if that.board[to] == player {
		return plan{}, ErrSelfBlocked
	}

	return plan{from: from, to: to}, nil
}

func (that *Game) validateEntry() (plan, error) {
	player := that.current

	if that.start[player] == 0 {
		return plan{}, ErrNoReserve
	}

	to, ok := EntryIndex(that.dice, player)
	if !ok {
		return plan{}, ErrInvalidRoll
	}

	// an opposing piece on the entry square is captured, not blocking
	if that.board[to] == player {
		return plan{}, ErrSelfBlocked
	}

	return plan{from: noSquare, to: to}, nil
}

func (that *Game) apply(move plan) {
	player := that.current

	if move.from == noSquare {
		that.start[player]--
	} else {
		that.board[move.from] = NoPlayer
	}

	if move.to == noSquare {
		that.off[player]++
	} else {
		if victim := that.board[move.to]; victim == player.Opponent() {
			that.start[victim]++
		}
		that.board[move.to] = player
	}

	that.dice = 0
	that.checkWinner()

	if !that.over {
		that.switchPlayer()
	}
}
