// Package hooks implements the lifecycle interception points as an explicit
// registry of ordered handler chains with compile-time-checked payload types.
//
// Each interception point is a Chain over its payload type. Pre handlers run
// before the core operation and may veto it (by returning an error, typically
// errs.VetoedByPolicyError) or rewrite the payload in place. Post handlers
// run after the operation and are notification-only; they return nothing and
// cannot influence the outcome.
//
// Chains are populated at startup in the composition root, so the set of
// handlers per point is visible in one place.
package hooks

import (
	"context"
	"sync"
)

// PreHandler runs before the guarded operation. It receives the payload by
// pointer and may mutate it. Returning an error aborts the operation.
type PreHandler[T any] func(ctx context.Context, payload *T) error

// PostHandler runs after the guarded operation completed. Notification-only.
type PostHandler[T any] func(ctx context.Context, payload T)

// Chain is the ordered pre/post handler list for one interception point.
// The zero value is usable; a chain with no handlers is a no-op. Chain is
// safe for concurrent use.
type Chain[T any] struct {
	mu   sync.RWMutex
	pre  []PreHandler[T]
	post []PostHandler[T]
}

// Pre appends a pre handler to the chain.
func (c *Chain[T]) Pre(h PreHandler[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pre = append(c.pre, h)
}

// Post appends a post handler to the chain.
func (c *Chain[T]) Post(h PostHandler[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.post = append(c.post, h)
}

// RunPre executes the pre handlers in order against the payload. The first
// error stops the chain and is returned to the caller, aborting the
// operation. Handlers may rewrite the payload through the pointer.
func (c *Chain[T]) RunPre(ctx context.Context, payload *T) error {
	c.mu.RLock()
	handlers := c.pre
	c.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}

// RunPost executes the post handlers in order with the final payload.
func (c *Chain[T]) RunPost(ctx context.Context, payload T) {
	c.mu.RLock()
	handlers := c.post
	c.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, payload)
	}
}
