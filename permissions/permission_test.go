package permissions_test

import (
	"net/http"
	"testing"

	"guesthouse/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionData_FindPermissions(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "public register", path: "/v1/auth/register", method: http.MethodPost, wantSkip: true},
		{name: "approve is admin only", path: "/v1/bookings/{id}/approve", method: http.MethodPut, wantRoles: []string{"admin"}},
		{name: "trailing slash ignored", path: "/v1/bookings/", method: http.MethodPost, wantRoles: []string{"admin", "student"}},
		{name: "method distinguishes routes", path: "/v1/bookings", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "availability is admin only", path: "/v1/availability/today", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "unknown route", path: "/v1/galleries", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := perms.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}
