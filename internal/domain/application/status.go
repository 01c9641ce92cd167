// Package application defines job applications and their status lifecycle.
//
// Status graph:
//
//	pending ──► reviewing ──► shortlisted ──► interviewed ──► {accepted | rejected}
//
// The owning recruiter may set any non-withdrawn status directly, in any
// order; the graph above is the expected path, not an enforced one.
// accepted and rejected are terminal: a terminal application cannot be
// withdrawn. withdrawn is applicant-initiated and reachable from every
// non-terminal status.
package application

import "fmt"

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewing   Status = "reviewing"
	StatusShortlisted Status = "shortlisted"
	StatusInterviewed Status = "interviewed"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusInterviewed,
		StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTerminal reports whether the status ends the recruiter-side lifecycle.
func IsTerminal(s Status) bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanWithdraw reports whether the applicant may still withdraw.
func CanWithdraw(s Status) bool {
	return !IsTerminal(s) && s != StatusWithdrawn
}

// RecruiterSettable reports whether a recruiter may assign the status via
// the update-status operation. withdrawn is applicant-only.
func RecruiterSettable(s Status) bool {
	return s != StatusWithdrawn
}
