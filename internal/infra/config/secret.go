// internal/infra/config/secret.go
package config

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// ResolveDBPassword fills DBPassword from Secret Manager when
// DBPasswordSecret is set; otherwise the env-provided password stands.
// sm may be nil when Secret Manager is not configured.
func (c *Config) ResolveDBPassword(ctx context.Context, sm *secretmanager.Client) error {
	secretID := strings.TrimSpace(c.DBPasswordSecret)
	if secretID == "" {
		return nil
	}
	if sm == nil {
		return errors.New("config: DB_PASSWORD_SECRET set but secretmanager client is nil")
	}
	prj := strings.TrimSpace(c.GCPProjectID)
	if prj == "" {
		return errors.New("config: DB_PASSWORD_SECRET set but GCP_PROJECT_ID is empty")
	}

	name := "projects/" + prj + "/secrets/" + secretID + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return errors.New("config: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return errors.New("config: empty secret payload (" + name + ")")
	}

	c.DBPassword = strings.TrimSpace(string(resp.Payload.Data))
	return nil
}
