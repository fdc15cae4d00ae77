// Package bid contains the Bid entity and its status state machine.
//
// A bid is a rider's priced, timed offer to fulfill a specific delivery
// request. Bids are created in pending status while the parent delivery is
// open, and transition exactly once into a terminal status: accepted (the
// customer chose this bid), rejected (a sibling bid was accepted), or
// withdrawn (the rider pulled out). A terminal bid is immutable.
//
// Acceptance exclusivity — at most one accepted bid per delivery — is
// enforced by the matching coordinator inside one atomic unit of work, not
// by this package alone.
package bid
