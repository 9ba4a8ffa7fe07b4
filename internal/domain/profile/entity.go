// internal/domain/profile/entity.go
package profile

import (
	"errors"
	"strings"
	"time"
)

// ========================================
// Types
// ========================================

// Role is the staff role carried as a custom claim on the auth user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCashier   Role = "cashier"
	RoleInventory Role = "inventory"
)

// Profile is one staff member. ID is the auth provider's user id; the
// password and session live entirely in the auth service, never here.
type Profile struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// ========================================
// Errors
// ========================================

var (
	ErrNotFound     = errors.New("profile: not found")
	ErrInvalidID    = errors.New("profile: invalid id")
	ErrInvalidEmail = errors.New("profile: invalid email")
	ErrInvalidName  = errors.New("profile: invalid name")
	ErrInvalidRole  = errors.New("profile: invalid role")
)

// ========================================
// Constructors
// ========================================

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCashier:
		return RoleCashier, nil
	case RoleInventory:
		return RoleInventory, nil
	default:
		return "", ErrInvalidRole
	}
}

func New(id, email, name string, role Role, now time.Time) (Profile, error) {
	p := Profile{
		ID:        strings.TrimSpace(id),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// ========================================
// Capabilities
// ========================================
//
// Authorization predicates evaluated before invoking restricted operations.
// The data store's own access-control layer is the real enforcement; these
// gates keep the service from even attempting a denied call.

func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

func (r Role) CanEditCatalog() bool {
	return r == RoleAdmin || r == RoleInventory
}

func (r Role) CanSell() bool {
	return r == RoleAdmin || r == RoleCashier
}

// ========================================
// Validation
// ========================================

func (p Profile) Validate() error {
	if p.ID == "" {
		return ErrInvalidID
	}
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return ErrInvalidEmail
	}
	if p.Name == "" {
		return ErrInvalidName
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return err
	}
	return nil
}

// ProfilesTableDDL defines the SQL for the profiles table migration.
const ProfilesTableDDL = `
-- Migration: Initialize Profile domain
-- Mirrors internal/domain/profile/entity.go

BEGIN;

CREATE TABLE IF NOT EXISTS profiles (
  id         TEXT        PRIMARY KEY,
  email      TEXT        NOT NULL UNIQUE,
  name       TEXT        NOT NULL,
  role       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),

  CONSTRAINT chk_profiles_role CHECK (role IN ('admin','cashier','inventory'))
);

COMMIT;
`
