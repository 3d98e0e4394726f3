package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/azuree0/Game-of-Ur/internal/apperror"
	"github.com/azuree0/Game-of-Ur/internal/entity"
	"github.com/azuree0/Game-of-Ur/internal/ur"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.GameView, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameView, error)
	EndGame(ctx context.Context, gameID string) error

	Roll(ctx context.Context, gameID string) (*entity.GameView, error)
	Move(ctx context.Context, gameID string, path int) (*entity.GameView, error)
	Pass(ctx context.Context, gameID string) (*entity.GameView, error)
	Reset(ctx context.Context, gameID string) (*entity.GameView, error)

	PathForSquare(ctx context.Context, gameID string, index int, player ur.Player) (int, bool, error)
}

type MoveRequest struct {
	Path *int `json:"path"`
}

type PathResponse struct {
	Index   int    `json:"index"`
	Player  string `json:"player"`
	Path    int    `json:"path"`
	OnRoute bool   `json:"on_route"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type GameHandlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandlers(logger *slog.Logger, games gameUseCase) *GameHandlers {
	return &GameHandlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *GameHandlers) Create(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.NewGame(r.Context())
	if err != nil {
		that.sendError(w, "Create", err)
		return
	}

	that.sendJSON(w, http.StatusCreated, view)
}

func (that *GameHandlers) Get(w http.ResponseWriter, r *http.Request) {
	that.respond(w, "Get", func() (*entity.GameView, error) {
		return that.games.GetGame(r.Context(), r.PathValue("id"))
	})
}

func (that *GameHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := that.games.EndGame(r.Context(), r.PathValue("id")); err != nil {
		that.sendError(w, "Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *GameHandlers) Roll(w http.ResponseWriter, r *http.Request) {
	that.respond(w, "Roll", func() (*entity.GameView, error) {
		return that.games.Roll(r.Context(), r.PathValue("id"))
	})
}

func (that *GameHandlers) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.sendError(w, "Move", fmt.Errorf("%w: malformed body: %w", apperror.ErrInvalidArgument, err))
		return
	}

	if req.Path == nil {
		that.sendError(w, "Move", fmt.Errorf("%w: path is required", apperror.ErrInvalidArgument))
		return
	}

	that.respond(w, "Move", func() (*entity.GameView, error) {
		return that.games.Move(r.Context(), r.PathValue("id"), *req.Path)
	})
}

func (that *GameHandlers) Pass(w http.ResponseWriter, r *http.Request) {
	that.respond(w, "Pass", func() (*entity.GameView, error) {
		return that.games.Pass(r.Context(), r.PathValue("id"))
	})
}

func (that *GameHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	that.respond(w, "Reset", func() (*entity.GameView, error) {
		return that.games.Reset(r.Context(), r.PathValue("id"))
	})
}

// Path answers which path position a board square is for a player, for
// highlighting a route in the UI.
func (that *GameHandlers) Path(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	index, err := strconv.Atoi(query.Get("index"))
	if err != nil {
		that.sendError(w, "Path", fmt.Errorf("%w: index must be an integer", apperror.ErrInvalidArgument))
		return
	}

	player, ok := ur.ParsePlayer(query.Get("player"))
	if !ok {
		that.sendError(w, "Path", fmt.Errorf("%w: player must be light or dark", apperror.ErrInvalidArgument))
		return
	}

	path, onRoute, err := that.games.PathForSquare(r.Context(), r.PathValue("id"), index, player)
	if err != nil {
		that.sendError(w, "Path", err)
		return
	}

	that.sendJSON(w, http.StatusOK, PathResponse{
		Index:   index,
		Player:  player.String(),
		Path:    path,
		OnRoute: onRoute,
	})
}

func (that *GameHandlers) respond(w http.ResponseWriter, method string, call func() (*entity.GameView, error)) {
	view, err := call()
	if err != nil {
		that.sendError(w, method, err)
		return
	}

	that.sendJSON(w, http.StatusOK, view)
}

func (that *GameHandlers) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *GameHandlers) sendError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.sendJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	that.logger.Debug("request rejected", "method", method, "error", err)
	that.sendJSON(w, status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrWrongPhase),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
