// Package dashboard selects the top-level view and navigation set for an
// authenticated principal's role. Composition is a total function: an
// unknown or missing role falls back to the receptionist tier rather than
// failing, so the shell always has something to render.
package dashboard

import "github.com/SYD090303/GymFlow/internal/core/domain"

// View identifies a top-level dashboard view.
type View string

const (
	ViewOwnerOverview     View = "owner_overview"
	ViewReceptionistDesk  View = "receptionist_dashboard"
	ViewMemberSelfService View = "member_dashboard"
)

// NavEntry is one navigation item exposed to the current role.
type NavEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var ownerNav = []NavEntry{
	{Name: "Overview", Path: "/dashboard"},
	{Name: "Members", Path: "/dashboard/members"},
	{Name: "Check-in/Check-out", Path: "/dashboard/check-in"},
	{Name: "Receptionists", Path: "/dashboard/receptionists"},
	{Name: "Membership Plans", Path: "/dashboard/plans"},
	{Name: "Notifications", Path: "/dashboard/notifications"},
	{Name: "Settings", Path: "/dashboard/settings"},
}

var receptionistNav = []NavEntry{
	{Name: "Overview", Path: "/dashboard/receptionist"},
	{Name: "Members", Path: "/dashboard/members"},
	{Name: "Check-in/Check-out", Path: "/dashboard/check-in"},
	{Name: "Settings", Path: "/dashboard/settings"},
}

var memberNav = []NavEntry{
	{Name: "My Dashboard", Path: "/dashboard/member"},
	{Name: "Settings", Path: "/dashboard/settings"},
}

// Composition is the resolved view and navigation for one role.
type Composition struct {
	Role string     `json:"role"`
	View View       `json:"view"`
	Nav  []NavEntry `json:"nav"`
}

// Compose resolves the default view and nav set for role.
func Compose(role string) Composition {
	switch role {
	case domain.RoleOwner, domain.RoleAdmin:
		return Composition{Role: role, View: ViewOwnerOverview, Nav: clone(ownerNav)}
	case domain.RoleMember:
		return Composition{Role: role, View: ViewMemberSelfService, Nav: clone(memberNav)}
	case domain.RoleReceptionist:
		return Composition{Role: role, View: ViewReceptionistDesk, Nav: clone(receptionistNav)}
	default:
		// Unknown or absent role: receptionist-tier nav, never an error.
		return Composition{Role: role, View: ViewReceptionistDesk, Nav: clone(receptionistNav)}
	}
}

func clone(nav []NavEntry) []NavEntry {
	out := make([]NavEntry, len(nav))
	copy(out, nav)
	return out
}
