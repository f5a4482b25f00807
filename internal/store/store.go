package store

import (
	"context"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/session"

	"gorm.io/gorm" // GORM ORM library
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Store is the record access layer. Every operation is scoped to the owning
// user inside the query itself, never as a post-fetch check.
type Store struct {
	db *gorm.DB
}

// New returns a Store bound to the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureUser creates the principal's User row from its claims if it does not
// exist yet. FirstOrCreate keyed on the primary key keeps a race between two
// concurrent first transactions at-least-idempotent.
func (s *Store) EnsureUser(ctx context.Context, p session.Principal) error {
	user := domain.User{ID: p.UserID}
	return s.db.WithContext(ctx).
		Where(domain.User{ID: p.UserID}).
		Attrs(domain.User{Email: p.Email, Name: p.Name, Image: p.Image}).
		FirstOrCreate(&user).Error
}

// parseDate parses a wire-format date, reporting the field on failure.
func parseDate(value, field string, errs *fieldErrors) time.Time {
	if value == "" {
		errs.add(field)
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		errs.add(field)
		return time.Time{}
	}
	return t
}
