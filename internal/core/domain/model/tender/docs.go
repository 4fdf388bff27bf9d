// Package tender contains the tender aggregate: one round of competitive
// bidding for a shipment order, scoped to one tier of a broker's carrier
// network, together with the offers invited carriers place against it.
//
// The aggregate enforces both state machines:
//
//	Tender:  Draft ──> Open ──> Closed ──> Awarded
//	              └───────┴────────┴─────> Cancelled
//
//	Offer:   Pending ──> Submitted ──> Accepted | Rejected | Withdrawn
//
// Offers exist only inside a tender. They are pre-provisioned in Pending
// status for every invited carrier when the tender is created, so an
// uninvited carrier has no offer slot to submit against. All mutations go
// through the aggregate root, which records a domain event for every state
// transition; tenders and offers are never deleted.
package tender
