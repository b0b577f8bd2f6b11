package scope

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds a single task invocation on a Failure record.
type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
