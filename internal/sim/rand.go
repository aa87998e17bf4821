package sim

import (
	"math/rand"
	"time"
)

// Rand is the only randomness the core consumes. *rand.Rand satisfies it;
// tests inject ScriptedRand for exact waypoint sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed picks a time-based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay jitter only
}

// ScriptedRand replays a fixed sequence of values in [0,1), cycling when
// exhausted. An empty script always yields 0.
type ScriptedRand struct {
	Values []float64
	next   int
}

func (s *ScriptedRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Calls returns how many values have been drawn so far.
func (s *ScriptedRand) Calls() int { return s.next }
