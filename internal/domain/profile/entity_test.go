// internal/domain/profile/entity_test.go
package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"CASHIER", RoleCashier},
		{"  inventory  ", RoleInventory},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, in := range []string{"", "root", "manager"} {
		_, err := ParseRole(in)
		assert.ErrorIs(t, err, ErrInvalidRole, "in=%q", in)
	}
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		role        Role
		manageUsers bool
		editCatalog bool
		sell        bool
	}{
		{RoleAdmin, true, true, true},
		{RoleCashier, false, false, true},
		{RoleInventory, false, true, false},
		{Role(""), false, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.manageUsers, tc.role.CanManageUsers(), "role=%q manage", tc.role)
		assert.Equal(t, tc.editCatalog, tc.role.CanEditCatalog(), "role=%q catalog", tc.role)
		assert.Equal(t, tc.sell, tc.role.CanSell(), "role=%q sell", tc.role)
	}
}

func TestNewValidates(t *testing.T) {
	now := time.Now().UTC()

	p, err := New(" uid-1 ", " ana@example.com ", " Ana ", RoleCashier, now)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", p.ID)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, "Ana", p.Name)

	_, err = New("", "a@b.cl", "A", RoleAdmin, now)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = New("u1", "not-an-email", "A", RoleAdmin, now)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = New("u1", "a@b.cl", "", RoleAdmin, now)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = New("u1", "a@b.cl", "A", "root", now)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
