package game

type GameState int

const (
	StateMenu       GameState = iota
	StateDriving              // main gameplay
	StateDayComplete          // the in-game day ran out
)

// Session tracks the run-level state: what screen is up, the day timer
// and the score carried out of the mission.
type Session struct {
	State    GameState
	DayTimer float64
	Score    int
	Best     int
}

func NewSession() *Session {
	return &Session{State: StateMenu}
}

// StartDay resets the mission/vehicle state holders for a fresh day.
// The caller rebuilds the vehicle and mission; the session only owns the
// clock and score.
func (s *Session) StartDay() {
	s.State = StateDriving
	s.DayTimer = 0
	s.Score = 0
}

// Update advances the day clock and ends the day after one full cycle.
func (s *Session) Update(dt float64, m *Mission) {
	if s.State != StateDriving {
		return
	}
	s.DayTimer += dt
	if m != nil {
		s.Score = m.Score
	}
	// The slack makes the day end on the nominal tick even though the
	// accumulated step sum lands a few ulps short of the period.
	if s.DayTimer >= DayCyclePeriod-TimeEpsilon {
		s.State = StateDayComplete
		if s.Score > s.Best {
			s.Best = s.Score
		}
	}
}
