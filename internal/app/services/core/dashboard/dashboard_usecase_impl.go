package dashboard

import (
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/responses"
)

var (
	superadminMenu = []responses.MenuItem{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Clinics", Path: "/dashboard/clinics"},
		{Label: "Users", Path: "/dashboard/users"},
		{Label: "Payments & Subscriptions", Path: "/dashboard/payments"},
		{Label: "System Analytics", Path: "/dashboard/analytics"},
		{Label: "Support Tickets", Path: "/dashboard/support"},
		{Label: "Settings", Path: "/dashboard/settings"},
	}
	ownerMenu = []responses.MenuItem{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Appointments", Path: "/dashboard/appointments"},
		{Label: "Patients", Path: "/dashboard/patients"},
		{Label: "Doctors", Path: "/dashboard/doctors"},
		{Label: "Assistants", Path: "/dashboard/assistants"},
		{Label: "Services", Path: "/dashboard/services"},
		{Label: "Billing", Path: "/dashboard/billing"},
	}
	clinicalMenu = []responses.MenuItem{
		{Label: "Overview", Path: "/dashboard"},
		{Label: "Appointments", Path: "/dashboard/appointments"},
		{Label: "Patients", Path: "/dashboard/patients"},
		{Label: "Medical Records", Path: "/dashboard/records"},
	}
)

type dashboardUsecase struct{}

func NewDashboardUsecase() contracts.DashboardUsecase {
	return &dashboardUsecase{}
}

// Resolve maps a role to its sidebar and main view. Unknown roles get
// nothing and ok=false.
func (uc *dashboardUsecase) Resolve(role string) (*responses.Dashboard, bool) {
	var (
		menu []responses.MenuItem
		view string
	)
	switch role {
	case constvars.RoleSuperadmin:
		menu, view = superadminMenu, constvars.DashboardViewPlatform
	case constvars.RoleOwner:
		menu, view = ownerMenu, constvars.DashboardViewClinicOwner
	case constvars.RoleDoctor, constvars.RoleAssistant:
		menu, view = clinicalMenu, constvars.DashboardViewClinical
	default:
		return nil, false
	}

	// callers may not mutate the shared menus
	items := make([]responses.MenuItem, len(menu))
	copy(items, menu)
	return &responses.Dashboard{Role: role, View: view, Menu: items}, true
}
