package testutil

import (
	"fmt"
	"sync"
	"time"
)

// FixedTime is the instant returned by FixedClock
var FixedTime = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime
func FixedClock() time.Time { return FixedTime }

// SequentialIDs returns a generator handing out "id-1", "id-2", ...
func SequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
