package bid

import (
	"fmt"

	"swiftbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a bid.
//
// State transitions:
//
//	pending ──> accepted
//	   │
//	   ├──────> rejected
//	   └──────> withdrawn
//
// All three destinations are terminal; a bid transitions exactly once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the bid is live and competing.
	StatusPending

	// StatusAccepted indicates the customer selected this bid. Terminal.
	StatusAccepted

	// StatusRejected indicates a sibling bid was accepted instead. Terminal.
	StatusRejected

	// StatusWithdrawn indicates the rider pulled the bid. Terminal.
	StatusWithdrawn
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusRejected:  "rejected",
		StatusWithdrawn: "withdrawn",
	}
}

// StatusFromString parses the wire representation of a bid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewFieldError("status",
		fmt.Sprintf("%q is not a valid bid status", s))
}

// String returns the wire name of the status, or "unknown" for invalid
// values.
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
			fmt.Sprintf("%d is not a valid bid status", s))
	}
	return nil
}

// IsTerminal reports whether the bid can no longer change status.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// Accept transitions pending→accepted. Only the matching coordinator accepts
// bids, inside the accept transaction.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("bid", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// Reject transitions pending→rejected, applied to every live sibling of the
// accepted bid in the same atomic unit.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("bid", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}

// Withdraw transitions pending→withdrawn at the bidding rider's request.
func (s Status) Withdraw() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("bid", s.String(), StatusWithdrawn.String())
	}
	return StatusWithdrawn, nil
}
