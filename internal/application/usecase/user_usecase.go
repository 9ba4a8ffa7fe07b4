// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	profiledom "tiendapos/internal/domain/profile"
)

// AuthAdmin is the outbound port to the hosted auth service's admin API:
// account creation with the role carried as a custom claim. Passwords and
// sessions live there, never in this service.
type AuthAdmin interface {
	CreateUser(ctx context.Context, email, password, name string, role profiledom.Role) (uid string, err error)
	DeleteUser(ctx context.Context, uid string) error
}

// Mailer sends plain-text mail. Invitation delivery is best effort.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

var (
	ErrUserAuthMissing = errors.New("users: auth admin is not configured")
	ErrUserRepoMissing = errors.New("users: profile repository is not configured")
	ErrForbidden       = errors.New("users: operation not allowed for this role")
	ErrPasswordTooWeak = errors.New("users: password must be at least 6 characters")
)

// UserUsecase handles role-based staff administration. Every operation takes
// the acting role and evaluates the capability predicate before touching the
// auth service; the store's own access control remains the real enforcement.
type UserUsecase struct {
	auth     AuthAdmin
	profiles profiledom.Repository
	mailer   Mailer
	mailFrom string
	now      func() time.Time
}

func NewUserUsecase(auth AuthAdmin, profiles profiledom.Repository, mailer Mailer, mailFrom string) *UserUsecase {
	return &UserUsecase{
		auth:     auth,
		profiles: profiles,
		mailer:   mailer,
		mailFrom: mailFrom,
		now:      time.Now,
	}
}

type CreateStaffInput struct {
	Email    string
	Password string
	Name     string
	Role     profiledom.Role
}

// CreateStaff creates an auth-service user carrying the role claim, persists
// the matching profile row, and sends an invitation mail (failure to send is
// logged, not returned). Requires an acting admin.
func (u *UserUsecase) CreateStaff(ctx context.Context, actor profiledom.Role, in CreateStaffInput) (profiledom.Profile, error) {
	if !actor.CanManageUsers() {
		return profiledom.Profile{}, ErrForbidden
	}
	if u.auth == nil {
		return profiledom.Profile{}, ErrUserAuthMissing
	}
	if u.profiles == nil {
		return profiledom.Profile{}, ErrUserRepoMissing
	}

	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	role, err := profiledom.ParseRole(string(in.Role))
	if err != nil {
		return profiledom.Profile{}, err
	}
	if len(in.Password) < 6 {
		return profiledom.Profile{}, ErrPasswordTooWeak
	}

	uid, err := u.auth.CreateUser(ctx, email, in.Password, name, role)
	if err != nil {
		return profiledom.Profile{}, fmt.Errorf("users: create auth user: %w", err)
	}

	p, err := profiledom.New(uid, email, name, role, u.now().UTC())
	if err != nil {
		return profiledom.Profile{}, err
	}
	created, err := u.profiles.Create(ctx, p)
	if err != nil {
		// The auth user exists without a profile row; remove it so the next
		// attempt starts clean.
		if delErr := u.auth.DeleteUser(ctx, uid); delErr != nil {
			log.Printf("[user_uc] WARN: auth user cleanup failed uid=%s err=%v", uid, delErr)
		}
		return profiledom.Profile{}, fmt.Errorf("users: create profile: %w", err)
	}

	if u.mailer != nil && u.mailFrom != "" {
		subject := "Your POS account"
		body := fmt.Sprintf("Hi %s,\n\nAn account was created for you (role: %s).\nSign in with this email address and the password you were given.\n", name, role)
		if mailErr := u.mailer.Send(ctx, u.mailFrom, email, subject, body); mailErr != nil {
			log.Printf("[user_uc] WARN: invitation mail failed to=%s err=%v", email, mailErr)
		}
	}

	log.Printf("[user_uc] OK: staff created uid=%s role=%s", uid, role)
	return created, nil
}

// ListStaff returns all profiles, newest first. Requires an acting admin.
func (u *UserUsecase) ListStaff(ctx context.Context, actor profiledom.Role) ([]profiledom.Profile, error) {
	if !actor.CanManageUsers() {
		return nil, ErrForbidden
	}
	if u.profiles == nil {
		return nil, ErrUserRepoMissing
	}
	return u.profiles.List(ctx)
}
