package engine

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// HighScores holds the best winning score of each mode for the process lifetime.
type HighScores struct {
	Easy int
	Hard int
	PVP  int
}

// For returns the high score of mode.
func (h HighScores) For(mode Mode) int {
	switch mode {
	case ModeEasy:
		return h.Easy
	case ModeHard:
		return h.Hard
	case ModePVP:
		return h.PVP
	}
	return 0
}

func (h *HighScores) set(mode Mode, score int) {
	switch mode {
	case ModeEasy:
		h.Easy = score
	case ModeHard:
		h.Hard = score
	case ModePVP:
		h.PVP = score
	}
}

// Session plays games one after another and keeps their high scores.
// HighScores may be called from any goroutine.
type Session struct {
	mu       sync.Mutex
	scores   HighScores
	debugLog *log.Logger
}

// NewSession creates a session with all high scores at zero. A nil logger discards.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{debugLog: logger}
}

// HighScores returns a copy of the current records.
func (s *Session) HighScores() HighScores {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores
}

// Play runs one game of cfg.Mode and records a new high score when the
// winner beats the mode's record. Draws and aborted games never change it.
func (s *Session) Play(cfg GameConfig, c Collaborator) (Outcome, error) {
	if cfg.Logger == nil {
		cfg.Logger = s.debugLog
	}
	g, err := NewGame(cfg, c)
	if err != nil {
		return Outcome{}, err
	}
	out, err := g.Play()
	if err != nil {
		return out, fmt.Errorf("game %s: %w", g.ID, err)
	}
	if score := out.WinningScore(); score > 0 && s.record(cfg.Mode, score) {
		s.debugLog.Printf("game %s: new %s high score %d", g.ID, cfg.Mode, score)
		c.NotifyNewHighScore(cfg.Mode, score)
	}
	return out, nil
}

// record stores score if it beats the current record of mode.
func (s *Session) record(mode Mode, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.scores.For(mode) {
		return false
	}
	s.scores.set(mode, score)
	return true
}

// Run asks sel for a mode and plays it until sel quits. base supplies every
// setting except the mode. Its Start and Opening apply to the first game
// only, later games use the standard opening. An aborted game goes straight
// back to the selector.
func (s *Session) Run(sel ModeSelector, c Collaborator, base GameConfig) error {
	for {
		mode, ok := sel.SelectMode(s.HighScores())
		if !ok {
			return nil
		}
		cfg := base
		cfg.Mode = mode
		base.Start, base.Opening = nil, nil
		out, err := s.Play(cfg, c)
		if err != nil {
			return err
		}
		s.debugLog.Printf("game %s: %s over, aborted=%v moves=%q", out.GameID, out.Mode, out.Aborted, out.Transcript)
	}
}

// Preselect returns a selector that answers the first call with mode and
// then defers to next.
func Preselect(mode Mode, next ModeSelector) ModeSelector {
	return &preselected{mode: mode, next: next}
}

type preselected struct {
	mode Mode
	used bool
	next ModeSelector
}

func (p *preselected) SelectMode(scores HighScores) (Mode, bool) {
	if !p.used {
		p.used = true
		return p.mode, true
	}
	return p.next.SelectMode(scores)
}
