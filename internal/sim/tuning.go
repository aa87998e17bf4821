package sim

// Tuning holds every gameplay constant the core reads. DefaultTuning
// returns the values the house level was balanced for.
type Tuning struct {
	DetectionRadius float64 // distance below which a visible player is spotted
	CaptureRadius   float64 // distance below which the player is caught, seen or not
	SearchDuration  float64 // seconds spent searching after losing sight
	AwarenessDecay  float64 // awareness lost per second while patrolling
	MaxAwareness    float64

	ChaseMultiplier    float64 // chase speed = base speed * this
	PatrolArrive       float64 // per-axis distance at which a waypoint counts as reached
	PatrolTimeout      float64 // seconds before a fresh waypoint is picked regardless
	SearchJitterChance float64 // per-tick probability of nudging the last-seen point
	SearchJitterRange  float64 // nudge is uniform in [-range, range) per axis

	MaxHealth     int
	CaptureDamage int

	TimeScale    float64 // in-game hours per real second
	DayLength    float64 // hour at which the clock wraps
	DayStartHour float64 // hour the clock resets to on wrap and at startup
	DayLimit     int     // the game is lost once the day counter exceeds this

	DiagonalScale float64 // per-axis factor applied to diagonal player intent
}

func DefaultTuning() Tuning {
	return Tuning{
		DetectionRadius: 200,
		CaptureRadius:   50,
		SearchDuration:  3.0,
		AwarenessDecay:  50,
		MaxAwareness:    100,

		ChaseMultiplier:    1.5,
		PatrolArrive:       10,
		PatrolTimeout:      5.0,
		SearchJitterChance: 0.05,
		SearchJitterRange:  50,

		MaxHealth:     100,
		CaptureDamage: 25,

		TimeScale:    0.1,
		DayLength:    24.0,
		DayStartHour: 7.0,
		DayLimit:     5,

		DiagonalScale: 0.707,
	}
}
