package component

import "time"

// TimerMode selects what a timer does after reaching its duration
type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed time toward a duration
// Repeating timers keep the remainder past each completion, so no fractional time is lost
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed       time.Duration
	timesFinished int
}

// NewTimer creates a timer with no elapsed time
func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by delta and returns it for chaining
// Non-positive durations never finish
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.timesFinished = 0
	if delta < 0 {
		delta = 0
	}
	if t.Duration <= 0 {
		return t
	}

	if t.Mode == TimerOnce {
		if t.elapsed >= t.Duration {
			return t
		}
		t.elapsed += delta
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.timesFinished = 1
		}
		return t
	}

	t.elapsed += delta
	if t.elapsed >= t.Duration {
		t.timesFinished = int(t.elapsed / t.Duration)
		t.elapsed %= t.Duration
	}
	return t
}

// TimesFinishedThisTick returns how many periods the last Tick completed
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Remaining returns time left in the current period
func (t *Timer) Remaining() time.Duration {
	return t.Duration - t.elapsed
}
