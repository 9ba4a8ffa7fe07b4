// internal/adapters/out/auth/firebase_admin.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	profiledom "tiendapos/internal/domain/profile"
)

// RoleClaim is the custom-claim key carrying the staff role on the auth user.
// The auth middleware reads the same key back out of verified ID tokens.
const RoleClaim = "role"

// FirebaseAdmin implements the usecase AuthAdmin port against Firebase Auth.
type FirebaseAdmin struct {
	Client *fbauth.Client
}

func NewFirebaseAdmin(client *fbauth.Client) *FirebaseAdmin {
	return &FirebaseAdmin{Client: client}
}

// CreateUser creates the auth user (email confirmed, password set) and stamps
// the role custom claim so it rides along in every ID token.
func (a *FirebaseAdmin) CreateUser(ctx context.Context, email, password, name string, role profiledom.Role) (string, error) {
	if a == nil || a.Client == nil {
		return "", errors.New("firebase_admin: auth client is nil")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("firebase_admin: email is empty")
	}

	params := (&fbauth.UserToCreate{}).
		Email(email).
		EmailVerified(true).
		Password(password).
		DisplayName(strings.TrimSpace(name))

	rec, err := a.Client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("firebase_admin: create user: %w", err)
	}

	claims := map[string]any{RoleClaim: string(role)}
	if err := a.Client.SetCustomUserClaims(ctx, rec.UID, claims); err != nil {
		// The account exists without its role; remove it so the caller can
		// retry cleanly instead of leaving a claim-less user behind.
		if delErr := a.Client.DeleteUser(ctx, rec.UID); delErr != nil {
			return "", fmt.Errorf("firebase_admin: set claims failed (%v) and cleanup failed: %w", err, delErr)
		}
		return "", fmt.Errorf("firebase_admin: set role claim: %w", err)
	}

	return rec.UID, nil
}

func (a *FirebaseAdmin) DeleteUser(ctx context.Context, uid string) error {
	if a == nil || a.Client == nil {
		return errors.New("firebase_admin: auth client is nil")
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errors.New("firebase_admin: uid is empty")
	}
	return a.Client.DeleteUser(ctx, uid)
}
