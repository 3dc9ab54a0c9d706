package registration

import (
	"errors"
	"fmt"
)

// Business-rule rejections. They are deterministic and never retried.
var (
	// ErrNotFound is returned when an activity reference does not resolve in
	// the requested language.
	ErrNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered is returned when the participant is already in the
	// activity.
	ErrAlreadyRegistered = errors.New("participant already registered")

	// ErrCapacityExceeded is returned when the activity has no open spots.
	ErrCapacityExceeded = errors.New("activity is full")

	// ErrNotRegistered is returned when unregistering a participant that is
	// not in the activity.
	ErrNotRegistered = errors.New("participant not registered")
)

// Error reports which activity and participant a rejection concerns.
// Reason is always one of the sentinel errors above.
type Error struct {
	Reason      error
	ActivityRef string
	Participant string
}

func (e *Error) Error() string {
	if e.Participant == "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.ActivityRef)
	}
	return fmt.Sprintf("%s: %s in %q", e.Reason, e.Participant, e.ActivityRef)
}

func (e *Error) Unwrap() error {
	return e.Reason
}

func reject(reason error, activityRef, participant string) error {
	return &Error{Reason: reason, ActivityRef: activityRef, Participant: participant}
}

// IsRejection reports whether err is one of the business-rule rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrNotRegistered)
}
