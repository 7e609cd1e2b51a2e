package logic

// Elapsed returns now - since using unsigned wraparound, so a delta spanning a
// rollover of the 32-bit millisecond counter is still small and positive.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// Gate limits a periodic action to at most once per Period milliseconds.
// The first call to Ready always succeeds.
type Gate struct {
	Period uint32
	last   uint32
	primed bool
}

// Ready reports whether the period has passed and, if so, records now as the
// last run.
func (g *Gate) Ready(now uint32) bool {
	if g.primed && Elapsed(now, g.last) < g.Period {
		return false
	}
	g.last = now
	g.primed = true
	return true
}

// Reset makes the next call to Ready succeed.
func (g *Gate) Reset() {
	g.primed = false
}
