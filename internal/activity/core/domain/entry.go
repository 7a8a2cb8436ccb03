package domain

import "time"

// LogEntry is one audit record: who did what, when.
type LogEntry struct {
	ID       int64
	Username string
	Activity string
	Date     time.Time
}
