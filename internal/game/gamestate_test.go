package game

import "testing"

func TestSessionDayEndsAfterCycle(t *testing.T) {
	s := NewSession()
	s.StartDay()
	m := NewMission(testSlots(), 1)
	m.Score = 250

	for i := 0; i < int(DayCyclePeriod/PhysicsStep); i++ {
		s.Update(PhysicsStep, m)
	}
	if s.State != StateDayComplete {
		t.Fatalf("state = %v after a full day", s.State)
	}
	if s.Score != 250 {
		t.Errorf("score = %d, want mirrored from the mission", s.Score)
	}
	if s.Best != 250 {
		t.Errorf("best = %d, want updated", s.Best)
	}
}

func TestSessionBestKeepsHighScore(t *testing.T) {
	s := NewSession()
	s.Best = 500
	s.StartDay()
	m := NewMission(testSlots(), 1)
	m.Score = 100

	for s.State == StateDriving {
		s.Update(PhysicsStep, m)
	}
	if s.Best != 500 {
		t.Errorf("best = %d, want untouched by a worse day", s.Best)
	}
}

func TestSessionUpdateIgnoredOutsideDriving(t *testing.T) {
	s := NewSession()
	s.Update(1, nil)
	if s.State != StateMenu || s.DayTimer != 0 {
		t.Errorf("menu session advanced: %+v", s)
	}

	s.StartDay()
	if s.State != StateDriving || s.DayTimer != 0 || s.Score != 0 {
		t.Errorf("StartDay did not reset: %+v", s)
	}
}
