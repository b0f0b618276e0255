package models

import (
	"fmt"
	"strings"
)

// StaffMember is the flattened staff row used by the staff tables.
type StaffMember struct {
	ID          FlexString `json:"id"`
	UserID      FlexString `json:"user_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Salary      FlexString `json:"salary,omitempty"`
	Percentage  FlexString `json:"percentage,omitempty"`
	Specialty   string     `json:"specialty,omitempty"`
	User        *StaffUser `json:"user,omitempty"`
}

// StaffUser is the nested profile some staff endpoints return.
type StaffUser struct {
	ID          FlexString `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	Email       string     `json:"email"`
}

// Names prefers the nested user profile when the flat fields are empty.
func (s StaffMember) Names() (string, string, string) {
	if s.User != nil && s.FirstName == "" && s.LastName == "" {
		return s.User.FirstName, s.User.LastName, s.User.PhoneNumber
	}
	return s.FirstName, s.LastName, s.PhoneNumber
}

// DoctorLabel renders "Dr. First Last (Specialty)" for dropdowns.
func (s StaffMember) DoctorLabel() string {
	first, last, _ := s.Names()
	label := strings.TrimSpace(fmt.Sprintf("Dr. %s %s", first, last))
	if s.Specialty != "" {
		label += " (" + s.Specialty + ")"
	}
	return label
}

// AssistantLabel renders "First Last - phone" for dropdowns.
func (s StaffMember) AssistantLabel() string {
	first, last, phone := s.Names()
	return strings.TrimSpace(fmt.Sprintf("%s %s - %s", first, last, phone))
}
