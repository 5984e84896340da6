package domain

import "time"

// Notification is an owner-facing event feed entry, e.g. "New check-in".
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Role      string    `json:"role" bson:"role"` // audience role, currently always OWNER
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
