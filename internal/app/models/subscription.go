package models

import "strconv"

type SubscriptionPlan struct {
	ID            FlexString `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	PriceMonthly  FlexString `json:"price_monthly"`
	PriceYearly   FlexString `json:"price_yearly"`
	MaxDoctors    int        `json:"max_doctors"`
	MaxAssistants int        `json:"max_assistants"`
	MaxPatients   int        `json:"max_patients"`
	IsActive      bool       `json:"is_active"`
}

// MonthlyPrice parses price_monthly, treating unparsable values as zero.
func (p SubscriptionPlan) MonthlyPrice() float64 {
	price, err := strconv.ParseFloat(string(p.PriceMonthly), 64)
	if err != nil {
		return 0
	}
	return price
}

type Subscription struct {
	ID        FlexString        `json:"id,omitempty"`
	Plan      *SubscriptionPlan `json:"plan,omitempty"`
	Status    string            `json:"status,omitempty"`
	IsActive  *bool             `json:"is_active,omitempty"`
	Approved  *bool             `json:"approved,omitempty"`
	StartDate string            `json:"start_date,omitempty"`
	EndDate   string            `json:"end_date,omitempty"`
}

type SubscriptionRequest struct {
	ID         FlexString `json:"id"`
	PlanName   string     `json:"plan_name"`
	ClinicName string     `json:"clinic_name"`
	CreatedAt  string     `json:"created_at"`
	Amount     FlexString `json:"amount"`
	Approved   bool       `json:"approved"`
}
