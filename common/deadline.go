package common

import (
	"math"
	"time"
)

// NemesisEpoch is the instant catapult timestamps and deadlines count from
var NemesisEpoch = time.Date(2016, time.April, 1, 0, 0, 0, 0, time.UTC)

// maxDeadline is the largest deadline whose instant still fits in unix milliseconds
var maxDeadline = Deadline(math.MaxInt64 - NemesisEpoch.UnixMilli())

// Deadline is the number of milliseconds since NemesisEpoch after which a transaction expires
type Deadline uint64

// Time returns the deadline as a UTC instant, deadlines past the unix millisecond range are clamped
func (d Deadline) Time() time.Time {
	if d > maxDeadline {
		d = maxDeadline
	}
	return time.UnixMilli(NemesisEpoch.UnixMilli() + int64(d)).UTC()
}

// String implement fmt.Stringer
func (d Deadline) String() string {
	return d.Time().Format(time.RFC3339Nano)
}
