package collector

import "time"

// SetNow replaces the clock used for UploadTime and returns a restore func.
func SetNow(f func() time.Time) func() {
	prev := now
	now = f
	return func() { now = prev }
}
