package delivery

import (
	"fmt"

	"swiftbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery request.
// It implements a state machine with defined transitions to ensure deliveries
// follow the matching workflow.
//
// State transitions:
//
//	pending ──> accepted ──> in_progress ──> completed
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// pending→cancelled is the customer cancel; accepted→cancelled and
// in_progress→cancelled are the exceptional abort path. completed and
// cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the delivery is open for bids.
	StatusPending

	// StatusAccepted indicates exactly one bid has been accepted.
	StatusAccepted

	// StatusInProgress indicates the winning rider began fulfillment.
	StatusInProgress

	// StatusCompleted indicates fulfillment was confirmed. Terminal.
	StatusCompleted

	// StatusCancelled indicates the delivery was called off. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:    "pending",
		StatusAccepted:   "accepted",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the wire representation of a delivery status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewFieldError("status",
		fmt.Sprintf("%q is not a valid delivery status", s))
}

// String returns the wire name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the enumerated lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewFieldError("status",
			fmt.Sprintf("%d is not a valid delivery status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Accept transitions pending→accepted, the exclusive matching step.
// Any other current status fails with an InvalidStateError carrying both the
// current and the attempted status.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("delivery", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// Start transitions accepted→in_progress, recording that the winning rider
// began fulfillment.
func (s Status) Start() (Status, error) {
	if s != StatusAccepted {
		return StatusUnknown, errs.NewInvalidStateError("delivery", s.String(), StatusInProgress.String())
	}
	return StatusInProgress, nil
}

// Complete transitions in_progress→completed. Completed is terminal.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidStateError("delivery", s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// Cancel transitions to cancelled from any non-terminal status: the customer
// cancel (from pending) and the exceptional abort (from accepted or
// in_progress) share this transition. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusAccepted && s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidStateError("delivery", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}

// ValidateCanHaveAcceptedBid validates the consistency between delivery
// status and the accepted bid reference: acceptedBidID must be set if and
// only if the status is accepted, in_progress, or completed.
func (s Status) ValidateCanHaveAcceptedBid(hasAcceptedBid bool) error {
	requiresBid := s == StatusAccepted || s == StatusInProgress || s == StatusCompleted

	if hasAcceptedBid && !requiresBid {
		return errs.NewFieldError("acceptedBidId",
			fmt.Sprintf("must not be set while delivery is %s", s))
	}
	if !hasAcceptedBid && requiresBid {
		return errs.NewFieldError("acceptedBidId",
			fmt.Sprintf("must be set while delivery is %s", s))
	}
	return nil
}
