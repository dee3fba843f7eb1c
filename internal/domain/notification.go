package domain

import "time"

// Notification is a single operator-visible event in the stream.
type Notification struct {
	ID        int64
	Message   string
	CreatedAt time.Time
}
