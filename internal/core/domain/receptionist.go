package domain

import "time"

// Receptionist is a front-desk staff record. The matching User row (same
// email, role RECEPTIONIST) carries the login credential.
type Receptionist struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Shift     string    `json:"shift,omitempty" bson:"shift,omitempty"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
