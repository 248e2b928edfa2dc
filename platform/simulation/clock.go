package simulation

import (
	"math/rand"
	"time"
)

const (
	businessHoursStart = 9
	businessHoursEnd   = 18
)

// Clock maps elapsed real time onto a simulated calendar under a fixed
// compression ratio. Immutable once created; all reads are pure
// functions of the wall clock, so it is safe for concurrent use.
//
// Elapsed time is measured with time.Since, which reads the monotonic
// clock: the simulated date never moves backward even if the host wall
// clock is adjusted.
type Clock struct {
	realStart         time.Time
	simStart          time.Time
	realSecondsPerDay float64
}

func NewClock(simStart time.Time, realSecondsPerDay float64) *Clock {
	if realSecondsPerDay <= 0 {
		realSecondsPerDay = 60
	}
	return &Clock{
		realStart:         time.Now(),
		simStart:          simStart,
		realSecondsPerDay: realSecondsPerDay,
	}
}

// SimulatedDay returns the number of whole simulated days elapsed since
// the simulation started.
func (c *Clock) SimulatedDay() int {
	elapsed := time.Since(c.realStart).Seconds()
	return int(elapsed / c.realSecondsPerDay)
}

// SimulatedDate returns the current simulated calendar date (midnight).
func (c *Clock) SimulatedDate() time.Time {
	return c.simStart.AddDate(0, 0, c.SimulatedDay())
}

// SimulatedDateTime returns the simulated date with a plausible
// intra-day timestamp: an hour inside business hours and random
// minute/second. A convenience for timestamping generated records, not
// a scheduling primitive.
func (c *Clock) SimulatedDateTime() time.Time {
	date := c.SimulatedDate()
	hour := businessHoursStart + rand.Intn(businessHoursEnd-businessHoursStart+1)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, rand.Intn(60), rand.Intn(60), 0,
		date.Location(),
	)
}
