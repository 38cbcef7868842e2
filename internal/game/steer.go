package game

// Steer decides whether a requested direction may replace the pending one.
// A request is accepted only when it switches the axis of motion relative to
// current, the direction applied by the last tick. Same-axis requests (the
// reverse and the no-op) are rejected, which rules out 180 degree turns.
func Steer(current, requested Direction) (Direction, bool) {
	if !requested.Valid() {
		return current, false
	}
	if current.Horizontal() == requested.Horizontal() {
		return current, false
	}
	return requested, true
}
