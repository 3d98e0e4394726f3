package ur

import (
	"errors"
	"fmt"
)

var ErrCorruptSnapshot = errors.New("corrupt game snapshot")

// Snapshot is a plain copy of the game state that hosts may serialize in any
// format. Board entries are cell codes (0 empty, 1 Light, 2 Dark).
type Snapshot struct {
	Board            [BoardSize]Player `json:"board"`
	LightPiecesStart uint8             `json:"light_pieces_start"`
	DarkPiecesStart  uint8             `json:"dark_pieces_start"`
	LightPiecesOff   uint8             `json:"light_pieces_off"`
	DarkPiecesOff    uint8             `json:"dark_pieces_off"`
	CurrentPlayer    Player            `json:"current_player"`
	DiceValue        uint8             `json:"dice_value"`
	GameOver         bool              `json:"game_over"`
	Winner           Player            `json:"winner"`
}

func (that *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:            that.board,
		LightPiecesStart: that.start[Light],
		DarkPiecesStart:  that.start[Dark],
		LightPiecesOff:   that.off[Light],
		DarkPiecesOff:    that.off[Dark],
		CurrentPlayer:    that.current,
		DiceValue:        that.dice,
		GameOver:         that.over,
		Winner:           that.winner,
	}
}

// Restore rebuilds a game from a snapshot after checking every state
// invariant, so a tampered or truncated snapshot never yields a playable game.
func Restore(snapshot Snapshot, roller Roller) (*Game, error) {
	game := &Game{
		board:   snapshot.Board,
		current: snapshot.CurrentPlayer,
		dice:    snapshot.DiceValue,
		over:    snapshot.GameOver,
		winner:  snapshot.Winner,
		roller:  roller,
	}
	game.start[Light] = snapshot.LightPiecesStart
	game.start[Dark] = snapshot.DarkPiecesStart
	game.off[Light] = snapshot.LightPiecesOff
	game.off[Dark] = snapshot.DarkPiecesOff

	if err := game.verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	return game, nil
}

func (that *Game) verify() error {
	if !that.current.IsValid() {
		return fmt.Errorf("unknown current player %d", that.current)
	}

	for index, owner := range that.board {
		if owner == NoPlayer {
			continue
		}

		if !owner.IsValid() {
			return fmt.Errorf("unknown owner %d on square %d", owner, index)
		}

		if _, ok := ToPath(index, owner); !ok {
			return fmt.Errorf("%s piece on square %d is off its route", owner, index)
		}
	}

	finished := make([]Player, 0, 2)
	for _, player := range [...]Player{Light, Dark} {
		total := that.PiecesInStart(player) + that.PiecesOnBoard(player) + that.PiecesOff(player)
		if total != PiecesPerPlayer {
			return fmt.Errorf("%s accounts for %d pieces", player, total)
		}

		if that.off[player] == PiecesPerPlayer {
			finished = append(finished, player)
		}
	}

	if that.dice != 0 && (that.dice < MinRoll || that.dice > MaxRoll) {
		return fmt.Errorf("dice value %d", that.dice)
	}

	switch {
	case len(finished) > 1:
		return errors.New("both players have borne off every piece")
	case len(finished) == 1 && (!that.over || that.winner != finished[0]):
		return fmt.Errorf("%s has borne off every piece but is not the winner", finished[0])
	case len(finished) == 0 && (that.over || that.winner != NoPlayer):
		return errors.New("game is marked over without a winner")
	case that.over && that.dice != 0:
		return errors.New("finished game holds a pending roll")
	}

	return nil
}
