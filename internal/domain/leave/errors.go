package leave

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeaveRequestNotFound   = errors.New("Leave request not found")
	ErrInvalidDateRange       = errors.New("End date cannot be before start date")
	ErrOverlappingLeave       = errors.New("You already have a leave request for this period")
	ErrLeaveRequestNotPending = errors.New("Leave request is no longer pending")
)

// StatusError reports an operation refused because the request already left Pending.
type StatusError struct {
	Op     string // "review" or "cancel"
	Status LeaveRequestStatus
}

func (e *StatusError) Error() string {
	if e.Op == "cancel" {
		return fmt.Sprintf("Cannot cancel %s leave request", strings.ToLower(string(e.Status)))
	}
	return fmt.Sprintf("Leave request is already %s", e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrLeaveRequestNotPending
}
