package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the state of the turn cycle.
type Phase int

const (
	AwaitingMove Phase = iota
	RoundOver
)

// Names holds the display names of both players.
type Names struct {
	A string
	B string
}

// Session drives the turn cycle over one board and keeps the score across rounds.
// It is not safe for concurrent use; the event loop that owns it serializes all calls.
type Session struct {
	ID string

	board   *Board
	score   Score
	names   Names
	current Stone
	phase   Phase
	winner  Stone
	log     *zap.Logger
}

// NewSession starts a session in AwaitingMove(PlayerA). A nil logger disables logging.
func NewSession(names Names, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		ID:      id,
		board:   NewBoard(),
		names:   names,
		current: PlayerA,
		phase:   AwaitingMove,
		log:     log.With(zap.String("session", id)),
	}
}

// Play drops the current player's stone into column.
// A full column yields a ColumnFull outcome and keeps the same player to move.
// Calls made while the round is over return ErrRoundOver; an out-of-range column
// returns ErrInvalidColumn. Neither changes any state.
func (s *Session) Play(column int) (Outcome, error) {
	if s.phase == RoundOver {
		return Outcome{}, ErrRoundOver
	}
	player := s.current
	row, err := s.board.Drop(column, player)
	if errors.Is(err, ErrColumnFull) {
		s.log.Debug("column full", zap.Int("column", column), zap.Stringer("player", player))
		return Outcome{Kind: ColumnFull, Player: player, Column: column, Row: -1}, nil
	}
	if err != nil {
		s.log.Warn("rejected drop", zap.Int("column", column), zap.Error(err))
		return Outcome{}, err
	}
	out := Outcome{Kind: Placed, Player: player, Column: column, Row: row}
	s.log.Debug("stone placed",
		zap.Int("column", column),
		zap.Int("row", row),
		zap.Stringer("player", player),
		zap.Int("moves", s.board.Moves()))

	switch {
	case CheckWin(s.board, column, row, player):
		out.Kind = Win
		s.score.Add(player)
		s.phase = RoundOver
		s.winner = player
		s.log.Info("round won",
			zap.String("winner", s.Name(player)),
			zap.Int("score_a", s.score.A),
			zap.Int("score_b", s.score.B))
	case s.board.IsFull():
		out.Kind = Draw
		s.phase = RoundOver
		s.winner = Empty
		s.log.Info("round drawn")
	default:
		s.current = player.Other()
	}
	return out, nil
}

// NewRound clears the board after a round and hands the first move to PlayerA.
func (s *Session) NewRound() {
	s.restart("new round")
}

// Reset clears the board on request. The score is kept.
func (s *Session) Reset() {
	s.restart("reset")
}

func (s *Session) restart(reason string) {
	s.board.Reset()
	s.current = PlayerA
	s.phase = AwaitingMove
	s.winner = Empty
	s.log.Debug(reason)
}

// Board returns the board. Callers must not drop stones on it directly.
func (s *Session) Board() *Board {
	return s.board
}

// Score returns the current tally.
func (s *Session) Score() Score {
	return s.score
}

// Current returns the player to move.
func (s *Session) Current() Stone {
	return s.current
}

// Phase returns the state of the turn cycle.
func (s *Session) Phase() Phase {
	return s.phase
}

// Winner returns the winner of the finished round, or Empty for a draw or a running round.
func (s *Session) Winner() Stone {
	return s.winner
}

// Names returns the player names.
func (s *Session) Names() Names {
	return s.names
}

// SetNames renames the players without touching the board or score.
func (s *Session) SetNames(names Names) {
	s.names = names
}

// Name returns the display name of player.
func (s *Session) Name(player Stone) string {
	switch player {
	case PlayerA:
		return s.names.A
	case PlayerB:
		return s.names.B
	}
	return ""
}

// ScoreLine formats the score as "<A>: <n> | <B>: <n>".
func (s *Session) ScoreLine() string {
	return fmt.Sprintf("%s: %d | %s: %d", s.names.A, s.score.A, s.names.B, s.score.B)
}
