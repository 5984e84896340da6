package dashboard

import (
	"testing"

	"github.com/SYD090303/GymFlow/internal/core/domain"
)

func navNames(nav []NavEntry) map[string]bool {
	names := make(map[string]bool, len(nav))
	for _, n := range nav {
		names[n.Name] = true
	}
	return names
}

func TestCompose_Owner(t *testing.T) {
	got := Compose(domain.RoleOwner)
	if got.View != ViewOwnerOverview {
		t.Fatalf("view = %q", got.View)
	}
	if len(got.Nav) != 7 {
		t.Fatalf("owner nav should have 7 entries, got %d", len(got.Nav))
	}

	names := navNames(got.Nav)
	for _, want := range []string{"Receptionists", "Membership Plans", "Notifications"} {
		if !names[want] {
			t.Fatalf("owner nav missing %q", want)
		}
	}
}

func TestCompose_AdminGetsOwnerTier(t *testing.T) {
	admin := Compose(domain.RoleAdmin)
	owner := Compose(domain.RoleOwner)
	if admin.View != owner.View || len(admin.Nav) != len(owner.Nav) {
		t.Fatalf("admin should resolve to the owner tier, got %+v", admin)
	}
}

func TestCompose_Receptionist(t *testing.T) {
	got := Compose(domain.RoleReceptionist)
	if got.View != ViewReceptionistDesk {
		t.Fatalf("view = %q", got.View)
	}
	if len(got.Nav) != 4 {
		t.Fatalf("receptionist nav should have 4 entries, got %d", len(got.Nav))
	}

	names := navNames(got.Nav)
	if names["Receptionists"] || names["Membership Plans"] {
		t.Fatalf("receptionist nav must not include owner-only entries: %v", got.Nav)
	}
	if !names["Members"] || !names["Check-in/Check-out"] {
		t.Fatalf("receptionist nav missing desk entries: %v", got.Nav)
	}
}

func TestCompose_Member(t *testing.T) {
	got := Compose(domain.RoleMember)
	if got.View != ViewMemberSelfService {
		t.Fatalf("view = %q", got.View)
	}
	if len(got.Nav) != 2 {
		t.Fatalf("member nav should have 2 entries, got %d", len(got.Nav))
	}

	names := navNames(got.Nav)
	if names["Members"] || names["Check-in/Check-out"] {
		t.Fatalf("member nav must not include staff entries: %v", got.Nav)
	}
}

func TestCompose_UnknownRoleFallsBack(t *testing.T) {
	for _, role := range []string{"", "JANITOR", "owner"} {
		got := Compose(role)
		if got.View != ViewReceptionistDesk {
			t.Fatalf("role %q: view = %q, want receptionist fallback", role, got.View)
		}
		if len(got.Nav) != 4 {
			t.Fatalf("role %q: fallback nav should have 4 entries", role)
		}
	}
}

func TestCompose_NavIsACopy(t *testing.T) {
	first := Compose(domain.RoleOwner)
	first.Nav[0].Name = "mutated"

	second := Compose(domain.RoleOwner)
	if second.Nav[0].Name == "mutated" {
		t.Fatalf("Compose must return an independent nav slice")
	}
}
