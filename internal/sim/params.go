package sim

// Params are the simulation tunables. DefaultParams matches the classic
// feel; the config layer may override individual fields before NewRound.
type Params struct {
	// TickRate is logical ticks per second. Countdowns (mode phases,
	// frightened, respawn) are plain tick counters derived from it.
	TickRate int

	FrightSeconds  int
	RespawnSeconds int

	// Speeds in pixels per tick. Eyes is the fastest, frightened the
	// slowest.
	PlayerSpeed  float64
	ChaseSpeed   float64
	ScatterSpeed float64
	FrightSpeed  float64
	EyesSpeed    float64

	// Seed for the frightened-mode direction picks. Zero means seed from
	// the clock; tests pass a fixed seed for determinism.
	Seed int64
}

func DefaultParams() Params {
	return Params{
		TickRate:       60,
		FrightSeconds:  8,
		RespawnSeconds: 2,
		PlayerSpeed:    2.6,
		ChaseSpeed:     1.6,
		ScatterSpeed:   1.4,
		FrightSpeed:    1.0,
		EyesSpeed:      3.2,
	}
}

func (p Params) frightTicks() int {
	return p.FrightSeconds * p.TickRate
}

func (p Params) respawnTicks() int {
	return p.RespawnSeconds * p.TickRate
}
