package domain

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "Beginner"
	Intermediate ExperienceLevel = "Intermediate"
	Advanced     ExperienceLevel = "Advanced"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Registration is a single participant's signup record. All fields except
// PaymentConfirmed are immutable after creation; there is no edit flow.
type Registration struct {
	ID       uuid.UUID `db:"id" json:"id"`
	FullName string    `db:"full_name" json:"full_name"`
	// Email is captured from the verified identity at submission time, never
	// from the form. Original case is preserved; matching is done on the
	// normalized column.
	Email string `db:"email" json:"email"`
	// UserEmail mirrors the legacy field written by the first version of the
	// registration site; records imported from it may carry only this one.
	UserEmail        sql.NullString  `db:"user_email" json:"user_email,omitempty"`
	EmailNormalized  string          `db:"email_normalized" json:"-"`
	Phone            string          `db:"phone" json:"phone"`
	Age              int             `db:"age" json:"age"`
	Experience       ExperienceLevel `db:"experience" json:"experience"`
	TransactionID    string          `db:"transaction_id" json:"transaction_id"`
	PaymentConfirmed bool            `db:"payment_confirmed" json:"payment_confirmed"`
	UserID           sql.NullString  `db:"user_id" json:"user_id,omitempty"`
	// CreatedAt is stored with millisecond precision: the verification code
	// derives from its unix-millis value.
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NormalizeEmail lowercases an email for comparison; stored values keep their
// original case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MatchesEmail reports whether the registration belongs to the given address,
// matching either the primary or the legacy email case-insensitively.
func (r Registration) MatchesEmail(email string) bool {
	want := NormalizeEmail(email)
	if NormalizeEmail(r.Email) == want {
		return true
	}
	return r.UserEmail.Valid && NormalizeEmail(r.UserEmail.String) == want
}

// Identity is the authenticated user as supplied by the identity provider.
type Identity struct {
	UID   string
	Email string
}
