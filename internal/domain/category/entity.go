// internal/domain/category/entity.go
package category

import (
	"errors"
	"strings"
	"time"
)

// Category is read-only reference data for the POS flow; it only changes
// through catalog management.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

var (
	ErrNotFound    = errors.New("category: not found")
	ErrInvalidID   = errors.New("category: invalid id")
	ErrInvalidName = errors.New("category: invalid name")
)

var MaxNameLen = 80

func New(id, name string, now time.Time) (Category, error) {
	c := Category{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (c Category) Validate() error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if c.Name == "" || len(c.Name) > MaxNameLen {
		return ErrInvalidName
	}
	return nil
}

// CategoriesTableDDL defines the SQL for the categories table migration.
const CategoriesTableDDL = `
-- Migration: Initialize Category domain
-- Mirrors internal/domain/category/entity.go

BEGIN;

CREATE TABLE IF NOT EXISTS categories (
  id         TEXT        PRIMARY KEY,
  name       TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),

  CONSTRAINT chk_categories_non_empty CHECK (
    char_length(trim(id)) > 0
    AND char_length(trim(name)) > 0
  )
);

COMMIT;
`
