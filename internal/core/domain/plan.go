package domain

import "time"

// PlanType is the commercial tier of a membership plan.
type PlanType string

const (
	PlanBasic    PlanType = "BASIC"
	PlanStandard PlanType = "STANDARD"
	PlanPremium  PlanType = "PREMIUM"
)

// MembershipPlan is a catalog entry. DurationMonths drives the end date
// computed when a member joins or renews on the plan.
type MembershipPlan struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	PlanType       PlanType  `json:"planType" bson:"plan_type"`
	Price          float64   `json:"price" bson:"price"`
	Description    string    `json:"description" bson:"description"`
	DurationMonths int       `json:"durationMonths" bson:"duration_months"`
	Status         Status    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}

// EndDateFrom returns the membership end date for a start date on this plan.
func (p *MembershipPlan) EndDateFrom(start time.Time) time.Time {
	return start.AddDate(0, p.DurationMonths, 0)
}
