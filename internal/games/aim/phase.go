package aim

import "time"

// Phase names reported through core.GameState.
const (
	PhaseMenu     = "menu"
	PhasePlaying  = "playing"
	PhaseGameOver = "gameover"
)

// phase is one of menuPhase, *playingPhase or gameOverPhase.
// Score and timer only exist while a session runs.
type phase interface {
	name() string
}

// menuPhase shows the title and waits for a click.
type menuPhase struct{}

func (menuPhase) name() string { return PhaseMenu }

// playingPhase is a running session.
type playingPhase struct {
	score     int
	start     time.Time
	remaining time.Duration
}

func (*playingPhase) name() string { return PhasePlaying }

// gameOverPhase shows the summary of the finished session.
type gameOverPhase struct {
	score int
}

func (gameOverPhase) name() string { return PhaseGameOver }

// Remaining returns the session time left at now, never negative.
func Remaining(start, now time.Time) time.Duration {
	left := SessionDuration - now.Sub(start)
	if left < 0 {
		return 0
	}
	return left
}

// Rate returns hits per second over a full session.
func Rate(score int) float64 {
	return float64(score) / SessionDuration.Seconds()
}
