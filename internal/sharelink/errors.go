package sharelink

import (
	"fmt"
	"time"
)

// MissingInputError indicates a required caller input was empty or absent.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s ist erforderlich", e.Field)
}

// NotFoundError indicates the share link or the referenced candidate does
// not exist. A dangling candidate reference is ordinary not-found, not a
// corruption signal.
type NotFoundError struct {
	Resource string
	Ref      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Ref)
}

// ExpiredError indicates the link's lifetime has passed. The state is
// terminal; there is no renewal.
type ExpiredError struct {
	Token     string
	ExpiresAt time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("share link expired at %s", e.ExpiresAt.Format(time.RFC3339))
}
