package gymclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Membership is a member's plan binding as the API reports it.
type Membership struct {
	PlanID      string     `json:"planId"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	AutoRenew   bool       `json:"autoRenew"`
	Status      string     `json:"membershipStatus"`
	RenewalDate *time.Time `json:"renewalDate,omitempty"`
}

// Member is a gym member record.
type Member struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Phone      string      `json:"phone,omitempty"`
	Status     string      `json:"status"`
	Membership *Membership `json:"membership,omitempty"`
}

// User is an authenticated account as returned by the auth endpoints.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login authenticates against the API and, on success, stores the token in
// the session so subsequent calls carry it.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", loginPayload{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.session.Login(resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout drops the session locally. The token is stateless, so there is no
// server call to make.
func (c *Client) Logout() error {
	return c.session.Logout()
}

// ListMembers returns all members, optionally filtered by account status.
func (c *Client) ListMembers(ctx context.Context, status string) ([]Member, error) {
	path := "/api/v1/members"
	if status != "" {
		q := url.Values{}
		q.Set("status", status)
		path += "?" + q.Encode()
	}

	var members []Member
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SearchMembers filters the member list by a case-insensitive match on
// name or email. The check-in desk uses this to find who is at the door.
func (c *Client) SearchMembers(ctx context.Context, query string) ([]Member, error) {
	members, err := c.ListMembers(ctx, "")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return members, nil
	}

	matched := members[:0]
	for _, m := range members {
		haystack := strings.ToLower(m.FirstName + " " + m.LastName + " " + m.Email)
		if strings.Contains(haystack, needle) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// GetMember returns one member by id.
func (c *Client) GetMember(ctx context.Context, id string) (*Member, error) {
	var m Member
	if err := c.do(ctx, http.MethodGet, "/api/v1/members/"+url.PathEscape(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MembersEndingSoon returns members whose membership expires within the
// server's configured window.
func (c *Client) MembersEndingSoon(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := c.do(ctx, http.MethodGet, "/api/v1/members/ending-soon", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}
