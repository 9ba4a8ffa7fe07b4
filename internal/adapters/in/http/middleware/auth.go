// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	authadapter "tiendapos/internal/adapters/out/auth"
	profiledom "tiendapos/internal/domain/profile"
)

// FirebaseAuthClient is an alias so deps can be typed without importing the
// firebase package everywhere.
type FirebaseAuthClient = fbauth.Client

// context key uses an unexported type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyProfile    = ctxKey{name: "currentProfile"}
	ctxKeyUID        = ctxKey{name: "uid"}
	ctxKeyTerminalID = ctxKey{name: "terminalId"}
)

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// against Firebase Auth, loads the staff profile for the token's uid and puts
// profile / uid / terminal id into the request context. The role claim on the
// token is cross-checked against the profile row; the profile row wins.
type AuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
	ProfileRepo  profiledom.Repository
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil || m.ProfileRepo == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		prof, err := m.ProfileRepo.GetByID(r.Context(), uid)
		if err != nil {
			http.Error(w, "profile not found", http.StatusForbidden)
			return
		}

		if raw, ok := token.Claims[authadapter.RoleClaim]; ok {
			if claimRole, ok2 := raw.(string); ok2 && claimRole != string(prof.Role) {
				log.Printf("[AuthMiddleware] WARN: role claim drift uid=%s claim=%s profile=%s", uid, claimRole, prof.Role)
			}
		}

		// Terminal id: header when the register names itself, else the uid.
		terminalID := strings.TrimSpace(r.Header.Get("X-Terminal-Id"))
		if terminalID == "" {
			terminalID = uid
		}

		ctx := WithProfile(r.Context(), prof)
		ctx = WithUID(ctx, uid)
		ctx = WithTerminalID(ctx, terminalID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithProfile returns a context carrying the staff profile.
func WithProfile(ctx context.Context, p profiledom.Profile) context.Context {
	return context.WithValue(ctx, ctxKeyProfile, p)
}

// WithUID returns a context carrying the authenticated uid.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKeyUID, uid)
}

// WithTerminalID returns a context carrying the resolved terminal id.
func WithTerminalID(ctx context.Context, terminalID string) context.Context {
	return context.WithValue(ctx, ctxKeyTerminalID, terminalID)
}

// ProfileFrom returns the authenticated staff profile, if any.
func ProfileFrom(ctx context.Context) (profiledom.Profile, bool) {
	p, ok := ctx.Value(ctxKeyProfile).(profiledom.Profile)
	return p, ok
}

// UIDFrom returns the authenticated uid, if any.
func UIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUID).(string)
	return v, ok
}

// TerminalIDFrom returns the terminal id resolved for this request.
func TerminalIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyTerminalID).(string)
	return v, ok
}
