package frame

import (
	"github.com/google/uuid"
	"github.com/plus3/powertris/tetris"
	"github.com/rs/zerolog"
)

// EngineFactory builds the engine for a new session. The logger is already
// tagged with the session ID.
type EngineFactory func(logger zerolog.Logger) *tetris.Engine

// Session owns the engine of the game being played. Restarting discards the
// engine wholesale and asks the factory for a new one.
type Session struct {
	ID uuid.UUID

	engine   *tetris.Engine
	factory  EngineFactory
	logger   zerolog.Logger
	restarts int
}

// NewSession creates a session and its first engine.
func NewSession(factory EngineFactory, logger zerolog.Logger) *Session {
	s := &Session{
		factory: factory,
		logger:  logger,
	}
	s.start()
	return s
}

func (s *Session) start() {
	s.ID = uuid.New()
	logger := s.logger.With().Str("session", s.ID.String()).Logger()
	s.engine = s.factory(logger)
	logger.Info().Int("restarts", s.restarts).Msg("session started")
}

// Engine returns the current engine. The pointer changes after Restart.
func (s *Session) Engine() *tetris.Engine {
	return s.engine
}

// Restart replaces the engine with a new one under a new session ID.
func (s *Session) Restart() {
	old := s.engine
	s.logger.Info().
		Str("session", s.ID.String()).
		Int("score", old.Score()).
		Int("lines", old.Lines()).
		Msg("session ended")

	s.restarts++
	s.start()
}

// Restarts counts how many times the session has been restarted.
func (s *Session) Restarts() int {
	return s.restarts
}
