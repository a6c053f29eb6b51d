package attendance

import (
	"fmt"
	"time"
)

// TimeOfDay is minutes since midnight. Only time of day enters the late
// calculation, never the calendar date.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFromClock truncates a wall-clock time to its time of day.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Classify maps an event time against the configured work start to a status.
// An event more than lateThresholdMinutes after workStart is late; anything
// else, including an arrival before workStart, is present. Pure and total for
// any two valid times of day. Substituting the current wall clock when the
// event time is missing is the caller's job.
func Classify(eventTime, workStart TimeOfDay, lateThresholdMinutes int) Status {
	diffMinutes := int(eventTime) - int(workStart)
	if diffMinutes > lateThresholdMinutes {
		return StatusLate
	}
	return StatusPresent
}
