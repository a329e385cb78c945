package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall-clock access so that time-dependent logic (candidate
// selection, future-date validation) is testable with a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the current time normalized to UTC. All date comparisons in
// the pipeline go through this single point.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// Module wires the system clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
