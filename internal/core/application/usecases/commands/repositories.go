// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and best-effort side effects
// (fan-out, event publishing, scheduling) after commit.
package commands

import (
	"context"

	"delify/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TransitionRepoFactory provides access to the scheduled-transition
	// repository within a transaction.
	TransitionRepoFactory interface {
		TransitionRepository() ports.TransitionRepository
	}

	// OrderUoW manages transactions for operations touching orders and the
	// owning user record: placement (address save) and status changes
	// (owner resolution for fan-out).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RemoveOrderUoW manages transactions for the administrative hard delete,
	// which must also drop the order's pending scheduled transitions.
	RemoveOrderUoW interface {
		TxManager
		OrderRepoFactory
		TransitionRepoFactory
	}

	// RemoveOrderUoWFactory creates new remove-order unit of work instances.
	RemoveOrderUoWFactory interface {
		Create() RemoveOrderUoW
	}
)
