package dashboard

import (
	"testing"

	"dentflow-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardUsecase_Resolve(t *testing.T) {
	uc := NewDashboardUsecase()

	cases := []struct {
		role      string
		view      string
		firstItem string
		items     int
	}{
		{constvars.RoleSuperadmin, constvars.DashboardViewPlatform, "Dashboard", 7},
		{constvars.RoleOwner, constvars.DashboardViewClinicOwner, "Dashboard", 7},
		{constvars.RoleDoctor, constvars.DashboardViewClinical, "Overview", 4},
		{constvars.RoleAssistant, constvars.DashboardViewClinical, "Overview", 4},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			dashboard, ok := uc.Resolve(tc.role)
			require.True(t, ok)
			assert.Equal(t, tc.view, dashboard.View)
			assert.Equal(t, tc.role, dashboard.Role)
			assert.Len(t, dashboard.Menu, tc.items)
			assert.Equal(t, tc.firstItem, dashboard.Menu[0].Label)
		})
	}

	t.Run("unknown role renders nothing", func(t *testing.T) {
		dashboard, ok := uc.Resolve("janitor")
		assert.False(t, ok)
		assert.Nil(t, dashboard)
	})

	t.Run("returned menu is a copy", func(t *testing.T) {
		first, _ := uc.Resolve(constvars.RoleOwner)
		first.Menu[0].Label = "changed"
		second, _ := uc.Resolve(constvars.RoleOwner)
		assert.Equal(t, "Dashboard", second.Menu[0].Label)
	})
}
