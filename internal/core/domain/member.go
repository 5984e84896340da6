package domain

import (
	"time"

	"github.com/SYD090303/GymFlow/pkg/clock"
)

// Status is the activation state shared by members, receptionists, and plans.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// MembershipStatus is derived from the membership's date window.
type MembershipStatus string

const (
	MembershipPending   MembershipStatus = "PENDING"
	MembershipActive    MembershipStatus = "ACTIVE"
	MembershipExpired   MembershipStatus = "EXPIRED"
	MembershipCancelled MembershipStatus = "CANCELLED"
)

// Membership binds a member to a plan over a date window. Dates are
// calendar days; times of day are not significant.
type Membership struct {
	PlanID      string           `json:"planId" bson:"plan_id"`
	StartDate   time.Time        `json:"startDate" bson:"start_date"`
	EndDate     time.Time        `json:"endDate" bson:"end_date"`
	AutoRenew   bool             `json:"autoRenew" bson:"auto_renew"`
	Status      MembershipStatus `json:"membershipStatus" bson:"status"`
	RenewalDate *time.Time       `json:"renewalDate,omitempty" bson:"renewal_date,omitempty"`
}

// DerivedStatus computes the membership status for the given day.
// CANCELLED is sticky: once set by business logic it is never recomputed.
func (m Membership) DerivedStatus(today time.Time) MembershipStatus {
	if m.Status == MembershipCancelled {
		return MembershipCancelled
	}
	day := clock.StartOfDay(today)
	if !m.StartDate.IsZero() && m.StartDate.After(day) {
		return MembershipPending
	}
	if !m.EndDate.IsZero() && m.EndDate.Before(day) {
		return MembershipExpired
	}
	return MembershipActive
}

// Member is the gym-goer aggregate.
type Member struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	Email      string      `json:"email" bson:"email"`
	FirstName  string      `json:"firstName" bson:"first_name"`
	LastName   string      `json:"lastName" bson:"last_name"`
	Phone      string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Status     Status      `json:"status" bson:"status"`
	Membership *Membership `json:"membership,omitempty" bson:"membership,omitempty"`
	CreatedAt  time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" bson:"updated_at"`
}

// FullName returns "First Last" with single-name fallbacks.
func (m *Member) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
