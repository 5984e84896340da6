package gymclient

import "testing"

func TestNewAPIError_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error message envelope", `{"errorMessage":"member not found"}`, "member not found"},
		{"plain message envelope", `{"message":"unauthorized"}`, "unauthorized"},
		{"error message wins over message", `{"errorMessage":"first","message":"second"}`, "first"},
		{"empty body", ``, "request failed with status 500"},
		{"non json body", `<html>gateway timeout</html>`, "request failed with status 500"},
		{"empty message falls back", `{"message":""}`, "request failed with status 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(500, []byte(tt.body), "request failed with status 500")
			if err.Message != tt.want {
				t.Fatalf("message = %q, want %q", err.Message, tt.want)
			}
			if err.StatusCode != 500 {
				t.Fatalf("status = %d", err.StatusCode)
			}
		})
	}
}

func TestNewAPIError_FieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			"errors array of field objects",
			`{"errors":[{"field":"email","message":"must be a valid email"},{"field":"phone","message":"required"}]}`,
			map[string]string{"email": "must be a valid email", "phone": "required"},
		},
		{
			"alternate field and message keys",
			`{"validationErrors":[{"name":"password","msg":"too short"},{"param":"startDate","error":"bad date"}]}`,
			map[string]string{"password": "too short", "startDate": "bad date"},
		},
		{
			"violations with default message",
			`{"violations":[{"property":"email","defaultMessage":"invalid address"}]}`,
			map[string]string{"email": "invalid address"},
		},
		{
			"field keyed map",
			`{"fieldErrors":{"email":"taken","phone":["bad format","too long"]}}`,
			map[string]string{"email": "taken", "phone": "bad format"},
		},
		{
			"bare strings attributed by keyword",
			`{"details":["the email address is invalid","password must be 8 characters"]}`,
			map[string]string{"email": "the email address is invalid", "password": "password must be 8 characters"},
		},
		{
			"fieldless object attributed by keyword",
			`{"errors":[{"message":"unknown plan id"}]}`,
			map[string]string{"membershipPlanId": "unknown plan id"},
		},
		{
			"start date keyword",
			`{"errors":[{"message":"start date cannot be in the past"}]}`,
			map[string]string{"startDate": "start date cannot be in the past"},
		},
		{
			"first message per field wins",
			`{"errors":[{"field":"email","message":"first"},{"field":"email","message":"second"}]}`,
			map[string]string{"email": "first"},
		},
		{
			"unattributable entries are dropped",
			`{"errors":["something went wrong"]}`,
			nil,
		},
		{
			"no field errors",
			`{"errorMessage":"boom"}`,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(400, []byte(tt.body), "fallback")
			if len(err.FieldErrors) != len(tt.want) {
				t.Fatalf("field errors = %v, want %v", err.FieldErrors, tt.want)
			}
			for field, msg := range tt.want {
				if err.FieldErrors[field] != msg {
					t.Fatalf("field %q = %q, want %q", field, err.FieldErrors[field], msg)
				}
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 409, Message: "member already checked in"}
	if got := err.Error(); got != "api error 409: member already checked in" {
		t.Fatalf("error string = %q", got)
	}
}
