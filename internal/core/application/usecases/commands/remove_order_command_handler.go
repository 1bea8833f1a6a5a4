package commands

import (
	"context"
	"log/slog"

	"delify/internal/core/ports"
)

// RemoveOrderCommandHandler performs the administrative hard delete.
// The order row and its pending scheduled transitions are removed in one
// transaction, and any in-memory timers for the order are cancelled so the
// dead order receives no further automatic advances.
type RemoveOrderCommandHandler struct {
	uowFactory RemoveOrderUoWFactory
	scheduler  ports.TransitionScheduler
	logger     *slog.Logger
}

// NewRemoveOrderCommandHandler creates a handler for order hard deletes.
func NewRemoveOrderCommandHandler(
	uowFactory RemoveOrderUoWFactory,
	scheduler ports.TransitionScheduler,
	logger *slog.Logger,
) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		logger:     logger.With("component", "remove_order_handler"),
	}
}

// Handle deletes the order. Fails with errs.ObjectNotFoundError when the id
// is unknown.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Existence check so unknown ids surface as NotFound, not as a no-op.
	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.TransitionRepository().DeleteForOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.scheduler.CancelFor(ctx, cmd.OrderID()); err != nil {
		h.logger.WarnContext(ctx, "failed to cancel scheduled transitions",
			"order", cmd.OrderID().String(), "error", err)
	}

	return nil
}
