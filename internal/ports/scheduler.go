package ports

import "time"

// Timer is a handle to a scheduled function
type Timer interface {
	// Stop prevents the function from running.
	// Returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs functions after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
