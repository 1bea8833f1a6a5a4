package commands

import (
	"context"
	"log/slog"

	"delify/internal/core/domain/model/account"
	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/ports"
	"delify/internal/notifications"
)

// ChangeOrderStatusCommandHandler applies a status and/or estimate change to
// one stored order as a single atomic read-modify-write, then notifies the
// owning customer over the push channel and the event stream.
//
// The handler serves both callers of the transition operation: the status
// scheduler (automatic forward progress) and operators (manual overrides).
// No transition graph is enforced for operators; see the Order aggregate.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantRepository
	notifier    ports.Notifier
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for order transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	notifier ports.Notifier,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger.With("component", "change_order_status_handler"),
	}
}

// Handle applies the transition and returns the updated order.
//
// Fails with errs.ObjectNotFoundError for an unknown order id, emitting no
// fan-out. Setting the currently held status again is idempotent: the write
// and the fan-out still happen, no invariant is violated. Fan-out and event
// publishing run post-commit and are best-effort.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = stored.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}
	if estimate := cmd.EstimatedDeliveryTime(); estimate != nil {
		stored.SetEstimatedDeliveryTime(*estimate)
	}

	if err = uow.OrderRepository().Update(ctx, stored); err != nil {
		return nil, err
	}

	// Resolved inside the transaction so the fan-out sees a consistent user.
	owner, err := uow.UserRepository().Get(ctx, stored.UserID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyUpdated(ctx, stored, owner)

	return stored, nil
}

// notifyUpdated pushes the updated order to the owning customer with
// restaurant and menu display fields resolved, and publishes it on the event
// stream. Best-effort: resolution and delivery failures are only logged.
func (h *ChangeOrderStatusCommandHandler) notifyUpdated(
	ctx context.Context,
	o *order.Order,
	owner *account.User,
) {
	var (
		restaurant *catalog.Restaurant
		menu       []*catalog.MenuItem
	)

	restaurant, err := h.restaurants.Get(ctx, o.RestaurantID())
	if err != nil {
		h.logger.WarnContext(ctx, "restaurant not resolved for notification",
			"restaurant", o.RestaurantID().String(), "error", err)
	} else if menu, err = h.restaurants.MenuItems(ctx, o.RestaurantID()); err != nil {
		h.logger.WarnContext(ctx, "menu not resolved for notification",
			"restaurant", o.RestaurantID().String(), "error", err)
	}

	payload := notifications.NewOrderPayload(o, owner, restaurant, menu)
	h.notifier.NotifyUser(ctx, owner.ExternalUID(), ports.EventOrderUpdated, payload)

	if err := h.publisher.PublishOrderChanged(ctx, ports.EventOrderUpdated, payload); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event", "error", err)
	}
}
