package simulation

// GrowthAccumulator carries the fractional remainder of continuous
// growth deltas across ticks and converts them into whole-number batch
// sizes. One unit of batch size represents emissionThreshold units of
// accumulated growth; nothing is lost between Drain calls.
//
// Not safe for concurrent use: only the scheduler's tick loop may touch
// an accumulator, and growth recomputation is serialized before
// emission within a tick.
type GrowthAccumulator struct {
	carry     float64
	threshold int
}

func NewGrowthAccumulator(emissionThreshold int) *GrowthAccumulator {
	if emissionThreshold < 1 {
		emissionThreshold = 1
	}
	return &GrowthAccumulator{threshold: emissionThreshold}
}

// Add accumulates a continuous growth delta. Negative deltas are
// ignored; growth functions never shrink the population.
func (a *GrowthAccumulator) Add(delta float64) {
	if delta > 0 {
		a.carry += delta
	}
}

// Drain returns how many whole batches have accumulated and keeps the
// sub-threshold remainder for future ticks.
func (a *GrowthAccumulator) Drain() int {
	t := float64(a.threshold)
	batch := int(a.carry / t)
	a.carry -= float64(batch) * t
	if a.carry < 0 {
		a.carry = 0
	}
	return batch
}

func (a *GrowthAccumulator) Carry() float64 {
	return a.carry
}

func (a *GrowthAccumulator) Threshold() int {
	return a.threshold
}
