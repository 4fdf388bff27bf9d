// Package events provides the typed in-process publish/subscribe mechanism
// for domain events. Subscriptions are keyed by a closed enumeration of event
// kinds; there is deliberately no wildcard subscription.
//
// Aggregates record events as they transition; command handlers publish the
// recorded events after a successful commit. Publish propagates subscriber
// errors back to the publisher, so a failed reaction (such as opening the
// next cascade tier) surfaces to the caller instead of stalling silently.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Kind identifies a domain event type. The set is closed: every state
// transition of a tender or offer maps to exactly one kind.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	TenderCreated
	TenderOpened
	TenderClosed
	TenderAwarded
	TenderCancelled

	OfferSubmitted
	OfferAccepted
	OfferRejected
	OfferWithdrawn
)

// String returns the human-readable name of the event kind.
func (k Kind) String() string {
	switch k {
	case TenderCreated:
		return "tender.created"
	case TenderOpened:
		return "tender.opened"
	case TenderClosed:
		return "tender.closed"
	case TenderAwarded:
		return "tender.awarded"
	case TenderCancelled:
		return "tender.cancelled"
	case OfferSubmitted:
		return "offer.submitted"
	case OfferAccepted:
		return "offer.accepted"
	case OfferRejected:
		return "offer.rejected"
	case OfferWithdrawn:
		return "offer.withdrawn"
	default:
		return "unknown"
	}
}

// DomainEvent is the structured notification announced after every state
// transition. EntityID is the tender id for tender events and the offer id
// for offer events; TenderID is set on both so subscribers can always locate
// the owning tender.
type DomainEvent struct {
	Kind       Kind
	EntityID   string
	TenderID   string
	State      string
	OccurredAt time.Time
}

// Handler consumes a published domain event. A non-nil return value is
// propagated to the publisher.
type Handler func(ctx context.Context, event DomainEvent) error

// Bus is a synchronous, typed publish/subscribe dispatcher. Handlers for a
// kind run in registration order on the publisher's goroutine. Bus is safe
// for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[Kind][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Kind][]Handler),
	}
}

// Subscribe registers a handler for the given event kind.
// Registration order is delivery order.
func (b *Bus) Subscribe(kind Kind, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[kind] = append(b.subs[kind], handler)
}

// Publish delivers the event to every subscriber of its kind. All handlers
// run even if an earlier one fails; their errors are joined and returned.
func (b *Bus) Publish(ctx context.Context, event DomainEvent) error {
	b.mu.RLock()
	handlers := b.subs[event.Kind]
	b.mu.RUnlock()

	var errsJoined error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errsJoined = errors.Join(errsJoined,
				fmt.Errorf("handler for %s failed: %w", event.Kind, err))
		}
	}

	return errsJoined
}
