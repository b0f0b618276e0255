package models

import "github.com/goccy/go-json"

type Clinic struct {
	ID           FlexString      `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	PhoneNumber  string          `json:"phone_number"`
	Disabled     bool            `json:"disabled"`
	Owner        *ClinicOwner    `json:"owner"`
	Subscription json.RawMessage `json:"subscription,omitempty"`
}

type ClinicOwner struct {
	ID        FlexString `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
}
