package models

import "github.com/goccy/go-json"

// Session is the bearer token plus the cached user profile that the
// dashboard keeps between requests.
type Session struct {
	AccessToken string          `json:"access_token"`
	User        User            `json:"user"`
	Clinic      json.RawMessage `json:"clinic,omitempty"`
}

type User struct {
	ID        string          `json:"id,omitempty"`
	Role      string          `json:"role"`
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Clinic    json.RawMessage `json:"clinic,omitempty"`
}

// ClinicID returns the id of the clinic attached to the session, looking at
// the user first and the top level second.
func (s *Session) ClinicID() string {
	for _, raw := range []json.RawMessage{s.User.Clinic, s.Clinic} {
		if id := clinicIDFromRaw(raw); id != "" {
			return id
		}
	}
	return ""
}

// HasClinic reports whether a truthy clinic reference is present in the
// session. An empty object still counts as a clinic.
func (s *Session) HasClinic() bool {
	return !isEmptyRaw(s.User.Clinic) || !isEmptyRaw(s.Clinic)
}

func clinicIDFromRaw(raw json.RawMessage) string {
	if isEmptyRaw(raw) {
		return ""
	}

	var clinic struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &clinic); err == nil && len(clinic.ID) > 0 {
		return rawScalarString(clinic.ID)
	}

	// Some logins return the clinic as a bare id.
	return rawScalarString(raw)
}

func rawScalarString(raw json.RawMessage) string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}

func isEmptyRaw(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", `""`, "false", "0":
		return true
	}
	return false
}
