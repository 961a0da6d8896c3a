package chart

import "github.com/jonboulle/clockwork"

// clock times renders so tests can freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for render timing. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
