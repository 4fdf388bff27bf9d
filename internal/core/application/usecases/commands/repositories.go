// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tendering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TenderRepoFactory provides access to the tender repository within a transaction.
	TenderRepoFactory interface {
		TenderRepository() ports.TenderRepository
	}

	// TenderUoW manages transactions for tender operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.TenderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TenderUoW interface {
		TxManager
		TenderRepoFactory
	}

	// TenderUoWFactory creates new tender unit of work instances.
	TenderUoWFactory interface {
		Create() TenderUoW
	}
)
