// Package testutils provides fakes and deterministic helpers for termfolio tests.
package testutils

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// FixedTime is the clock value used by deterministic tests.
var FixedTime = time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)

// FixedClock returns FixedTime.
func FixedClock() time.Time {
	return FixedTime
}

// GenerateUUID generates a UUID that is deterministic in test mode but random otherwise.
// Deterministic UUIDs look like 00000001-0000-4000-8000-000000000001.
func GenerateUUID(testMode bool) string {
	if testMode {
		idMutex.Lock()
		defer idMutex.Unlock()
		idCounter++
		return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
	}
	return uuid.New().String()
}
