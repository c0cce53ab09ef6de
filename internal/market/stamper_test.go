package market

import (
	"fmt"
	"time"
)

var baseTime = time.Date(2026, 10, 17, 14, 3, 5, 0, time.UTC)

// fakeStamper hands out id-1, id-2, ... and advances its clock one minute
// per call.
func fakeStamper() Stamper {
	var n int
	var ticks int
	return Stamper{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Now: func() time.Time {
			ticks++
			return baseTime.Add(time.Duration(ticks-1) * time.Minute)
		},
	}
}
