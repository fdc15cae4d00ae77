// Package delivery contains the DeliveryRequest aggregate root and its value
// objects: the delivery type, the package details, and the status state
// machine.
//
// A delivery request is a customer's posted shipment job awaiting rider bids.
// It owns its status lifecycle (pending, accepted, in_progress, completed,
// cancelled) and the weak reference to the accepted bid. The aggregate
// enforces two invariants at all times:
//
//   - acceptedBidID is set if and only if the status is accepted,
//     in_progress, or completed
//   - status transitions follow the defined table; anything else fails with
//     an InvalidStateError carrying the current and the attempted status
//
// Deliveries are never deleted, only terminally statused, so the accepted
// bid reference can stay a plain identifier without dangling-reference
// concerns.
package delivery
