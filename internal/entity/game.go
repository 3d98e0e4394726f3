package entity

import (
	"fmt"
	"time"

	"github.com/azuree0/Game-of-Ur/internal/ur"
)

// Session is one hosted match: the rules state plus bookkeeping.
type Session struct {
	ID        string      `json:"id"`
	Game      ur.Snapshot `json:"game"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewSession(id string, game *ur.Game, now time.Time) *Session {
	return &Session{
		ID:        id,
		Game:      game.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Restore rebuilds the rules state with dice attached.
func (that *Session) Restore(dice ur.Roller) (*ur.Game, error) {
	game, err := ur.Restore(that.Game, dice)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", that.ID, err)
	}

	return game, nil
}

// Store copies the rules state back into the session.
func (that *Session) Store(game *ur.Game, now time.Time) {
	that.Game = game.Snapshot()
	that.UpdatedAt = now
}

// GameView is what the presentation layer renders. Board holds one cell code
// per square: 0 empty, 1 Light, 2 Dark.
type GameView struct {
	ID             string              `json:"id"`
	Board          [ur.BoardSize]uint8 `json:"board"`
	MovableSquares []int               `json:"movable_squares"`
	ValidMoves     []int               `json:"valid_moves"`
	CurrentPlayer  string              `json:"current_player"`
	DiceValue      uint8               `json:"dice_value"`
	Phase          string              `json:"phase"`
	GameOver       bool                `json:"game_over"`
	Winner         string              `json:"winner,omitempty"`
	Status         string              `json:"status"`
	Passed         bool                `json:"passed,omitempty"`

	LightPiecesStart   int `json:"light_pieces_start"`
	DarkPiecesStart    int `json:"dark_pieces_start"`
	LightPiecesOnBoard int `json:"light_pieces_on_board"`
	DarkPiecesOnBoard  int `json:"dark_pieces_on_board"`
	LightPiecesOff     int `json:"light_pieces_off"`
	DarkPiecesOff      int `json:"dark_pieces_off"`
}

func NewGameView(id string, game *ur.Game) *GameView {
	view := &GameView{
		ID:             id,
		MovableSquares: make([]int, 0, ur.PiecesPerPlayer),
		ValidMoves:     game.ValidMoves(),
		CurrentPlayer:  game.PlayerName(),
		DiceValue:      game.DiceValue(),
		Phase:          game.Phase().String(),
		GameOver:       game.IsOver(),
		Status:         game.StatusMessage(),

		LightPiecesStart:   game.PiecesInStart(ur.Light),
		DarkPiecesStart:    game.PiecesInStart(ur.Dark),
		LightPiecesOnBoard: game.PiecesOnBoard(ur.Light),
		DarkPiecesOnBoard:  game.PiecesOnBoard(ur.Dark),
		LightPiecesOff:     game.PiecesOff(ur.Light),
		DarkPiecesOff:      game.PiecesOff(ur.Dark),
	}

	for index := range ur.BoardSize {
		occupant, movable := game.SquareInfo(index)
		view.Board[index] = uint8(occupant)

		if movable {
			view.MovableSquares = append(view.MovableSquares, index)
		}
	}

	if winner, over := game.Winner(); over {
		view.Winner = winner.String()
	}

	return view
}
