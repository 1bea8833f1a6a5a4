package commands

import (
	"context"
	"log/slog"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/ports"
	"delify/internal/notifications"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the customer, saves their delivery address as the new default,
// persists the order in "placed" status, and then triggers the post-commit
// side effects: admin and vendor fan-out, the order-changed event stream,
// and registration of the automatic status-advance chain.
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantRepository
	notifier    ports.Notifier
	publisher   ports.OrderEventPublisher
	scheduler   ports.TransitionScheduler
	logger      *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	notifier ports.Notifier,
	publisher ports.OrderEventPublisher,
	scheduler ports.TransitionScheduler,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		notifier:    notifier,
		publisher:   publisher,
		scheduler:   scheduler,
		logger:      logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command and returns the stored order.
//
// Validation failures reject the request before anything is persisted.
// Persistence runs in one transaction: the address save and the order insert
// commit or roll back together. Fan-out, event publishing, and scheduling run
// only after a successful commit and are best-effort: their failures are
// logged and never surfaced to the caller.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	user, err := uow.UserRepository().GetByExternalUID(ctx, cmd.ExternalUID())
	if err != nil {
		return nil, err
	}

	// Denormalized convenience copy: the submitted address becomes the
	// user's default for the next checkout.
	user.SetAddress(cmd.DeliveryAddress())
	if err = uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		user.ID(),
		cmd.RestaurantID(),
		cmd.Items(),
		cmd.TotalAmount(),
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyPlaced(ctx, newOrder)

	if err = h.scheduler.ScheduleLifecycle(ctx, newOrder.ID()); err != nil {
		h.logger.ErrorContext(ctx, "failed to schedule lifecycle transitions",
			"order", newOrder.ID().String(), "error", err)
	}

	return newOrder, nil
}

// notifyPlaced fans the freshly placed order out to admins and the vendor and
// publishes it on the event stream. All failures are swallowed here: the
// order is already committed and notification is best-effort.
func (h *PlaceOrderCommandHandler) notifyPlaced(ctx context.Context, o *order.Order) {
	restaurant, err := h.restaurants.Get(ctx, o.RestaurantID())
	if err != nil {
		h.logger.WarnContext(ctx, "restaurant not resolved for notification",
			"restaurant", o.RestaurantID().String(), "error", err)
	}

	payload := notifications.NewOrderPayload(o, nil, restaurant, nil)
	h.notifier.Broadcast(ctx, ports.EventNewOrderAdmin, payload)
	h.notifier.NotifyRestaurant(ctx, o.RestaurantID().String(), ports.EventNewVendorOrder, payload)

	if err := h.publisher.PublishOrderChanged(ctx, ports.EventNewOrderAdmin, payload); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event", "error", err)
	}
}
