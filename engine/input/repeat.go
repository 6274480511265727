package input

// Repeat turns how long a key has been held into discrete presses: one on
// the first tick, then one every Interval ticks once Delay has passed
type Repeat struct {
	Delay    int
	Interval int
}

// Fire reports whether a key held for ticks (1 on the first frame) should
// produce a press this tick
func (r Repeat) Fire(ticks int) bool {
	switch {
	case ticks == 1:
		return true
	case ticks < r.Delay || r.Interval <= 0:
		return false
	default:
		return (ticks-r.Delay)%r.Interval == 0
	}
}
