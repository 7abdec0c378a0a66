package manager

import (
	"time"
)

// Speeds holds the two independent tick intervals
type Speeds struct {
	Snake   time.Duration
	Food    time.Duration
	MinFood time.Duration
	Divisor float64
}

// StateManager owns the run state and the speed policy. Nothing here is
// persisted between sessions.
type StateManager struct {
	running  bool
	speeds   Speeds
	captures int
}

func NewStateManager(speeds Speeds) *StateManager {
	return &StateManager{
		running: true,
		speeds:  speeds,
	}
}

func (sm *StateManager) Running() bool {
	return sm.running
}

// Stop moves the session to its terminal state. It returns true only for the
// call that performed the transition.
func (sm *StateManager) Stop() bool {
	if !sm.running {
		return false
	}
	sm.running = false
	return true
}

func (sm *StateManager) SnakeInterval() time.Duration {
	return sm.speeds.Snake
}

func (sm *StateManager) FoodInterval() time.Duration {
	return sm.speeds.Food
}

func (sm *StateManager) Captures() int {
	return sm.captures
}

// RecordCapture speeds the food up, floored at the minimum, and derives the
// snake interval as half of the new food interval.
func (sm *StateManager) RecordCapture() {
	sm.captures++

	food := time.Duration(float64(sm.speeds.Food) / sm.speeds.Divisor)
	if food < sm.speeds.MinFood {
		food = sm.speeds.MinFood
	}
	sm.speeds.Food = food
	sm.speeds.Snake = food / 2
}
