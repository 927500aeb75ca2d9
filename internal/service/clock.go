package service

import "time"

// SystemClock reads the wall clock in unix seconds.
type SystemClock struct{}

// Now returns the current unix time.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
