// Package scheduler drives the automatic order lifecycle: placed orders are
// advanced to preparing, out_for_delivery, and delivered on a timed chain
// that simulates kitchen and courier progress.
//
// Every pending advance is persisted as a schedule.Transition row before its
// in-memory timer is armed. Timers die with the process; the rows do not, so
// the periodic Sweep re-fires whatever came due while nobody was listening.
// Each fired transition schedules the next link, which keeps exactly one
// pending transition per order and lets operator overrides stop the chain:
// a terminal order simply schedules no successor.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"delify/internal/core/application/usecases/commands"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/domain/model/schedule"
	"delify/internal/core/ports"
	"delify/internal/pkg/errs"
)

// Delays configures the gaps between lifecycle steps.
type Delays struct {
	// Preparing is the gap between placement and the kitchen starting.
	Preparing time.Duration

	// OutForDelivery is the gap between preparing and the courier leaving.
	OutForDelivery time.Duration

	// Delivered is the gap between leaving and the handoff.
	Delivered time.Duration
}

// DefaultDelays returns the demo-speed lifecycle gaps.
func DefaultDelays() Delays {
	return Delays{
		Preparing:      5 * time.Second,
		OutForDelivery: 10 * time.Second,
		Delivered:      15 * time.Second,
	}
}

// For returns the configured gap before reaching the target status.
func (d Delays) For(target order.Status) (time.Duration, bool) {
	switch target {
	case order.Preparing:
		return d.Preparing, true
	case order.OutForDelivery:
		return d.OutForDelivery, true
	case order.Delivered:
		return d.Delivered, true
	default:
		return 0, false
	}
}

// StatusChanger applies one status transition to a stored order. The
// ChangeOrderStatusCommandHandler satisfies it.
type StatusChanger interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
}

// Scheduler implements ports.TransitionScheduler with per-order timers
// backed by persisted transition rows.
type Scheduler struct {
	uowFactory ports.UnitOfWorkFactory
	changer    StatusChanger
	delays     Delays
	logger     *slog.Logger

	mu     sync.Mutex
	timers map[kernel.UUID]*time.Timer
}

// New creates a scheduler. Call Stop on shutdown to drop armed timers.
func New(
	uowFactory ports.UnitOfWorkFactory,
	changer StatusChanger,
	delays Delays,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		uowFactory: uowFactory,
		changer:    changer,
		delays:     delays,
		logger:     logger.With("component", "scheduler"),
		timers:     make(map[kernel.UUID]*time.Timer),
	}
}

// ScheduleLifecycle registers the first automatic advance for a freshly
// placed order. The rest of the chain follows link by link as each
// transition fires.
func (s *Scheduler) ScheduleLifecycle(ctx context.Context, orderID kernel.UUID) error {
	target, ok := order.Placed.Next()
	if !ok {
		return nil
	}
	return s.schedule(ctx, orderID, target)
}

// CancelFor drops the armed timer of one order. Persisted rows are the
// caller's concern: the remove-order transaction deletes them itself.
func (s *Scheduler) CancelFor(_ context.Context, orderID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[orderID]; ok {
		timer.Stop()
		delete(s.timers, orderID)
	}
	return nil
}

// Sweep fires every persisted transition that came due without an armed
// timer, typically because the process restarted. Orders with a live timer
// are skipped; their timer will handle them.
func (s *Scheduler) Sweep(ctx context.Context) error {
	repo := s.uowFactory.Create().TransitionRepository()

	due, err := repo.GetDue(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, transition := range due {
		s.mu.Lock()
		_, armed := s.timers[transition.OrderID()]
		s.mu.Unlock()
		if armed {
			continue
		}

		s.apply(ctx, transition)
	}

	return nil
}

// Stop drops every armed timer. Pending rows stay in the database for the
// next process to sweep.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for orderID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, orderID)
	}
}

func (s *Scheduler) schedule(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	delay, ok := s.delays.For(target)
	if !ok {
		return nil
	}

	transition, err := schedule.NewTransition(orderID, target, time.Now().Add(delay))
	if err != nil {
		return err
	}

	repo := s.uowFactory.Create().TransitionRepository()
	if err = repo.Add(ctx, transition); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, exists := s.timers[orderID]; exists {
		timer.Stop()
	}
	s.timers[orderID] = time.AfterFunc(delay, func() {
		s.fire(transition)
	})

	return nil
}

// fire runs on the timer goroutine with a fresh context: the request that
// scheduled the chain is long gone.
func (s *Scheduler) fire(transition *schedule.Transition) {
	s.mu.Lock()
	delete(s.timers, transition.OrderID())
	s.mu.Unlock()

	s.apply(context.Background(), transition)
}

// apply performs one chain link: advance the order, mark the row fired, and
// schedule the successor. Failures are logged and left for the sweep; an
// unfired row simply comes due again.
func (s *Scheduler) apply(ctx context.Context, transition *schedule.Transition) {
	uow := s.uowFactory.Create()

	stored, err := uow.OrderRepository().Get(ctx, transition.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Order deleted under a pending transition; drop the leftovers.
			if delErr := uow.TransitionRepository().DeleteForOrder(ctx, transition.OrderID()); delErr != nil {
				s.logger.WarnContext(ctx, "failed to clear orphaned transitions",
					"order", transition.OrderID().String(), "error", delErr)
			}
			return
		}
		s.logger.ErrorContext(ctx, "failed to load order for transition",
			"order", transition.OrderID().String(), "error", err)
		return
	}

	// An operator override ended the lifecycle; the chain stops here.
	if stored.Status().IsTerminal() {
		if err = uow.TransitionRepository().DeleteForOrder(ctx, transition.OrderID()); err != nil {
			s.logger.WarnContext(ctx, "failed to clear transitions of finished order",
				"order", transition.OrderID().String(), "error", err)
		}
		return
	}

	target := transition.TargetStatus()
	cmd, err := commands.NewChangeOrderStatusCommand(transition.OrderID(), &target, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build transition command",
			"order", transition.OrderID().String(), "error", err)
		return
	}

	// Claim the row before advancing so a timer and a concurrent sweep
	// cannot both apply the same link.
	claimed, err := uow.TransitionRepository().ClaimFired(ctx, transition.ID(), time.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to claim transition",
			"order", transition.OrderID().String(), "error", err)
		return
	}
	if !claimed {
		return
	}

	if _, err = s.changer.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "scheduled transition failed",
			"order", transition.OrderID().String(), "target", target.String(), "error", err)
		// Release the claim; the row comes due again and the sweep retries.
		if relErr := uow.TransitionRepository().Update(ctx, transition); relErr != nil {
			s.logger.WarnContext(ctx, "failed to release transition claim",
				"order", transition.OrderID().String(), "error", relErr)
		}
		return
	}

	transition.MarkFired(time.Now())

	next, ok := target.Next()
	if !ok {
		return
	}

	if err = s.schedule(ctx, transition.OrderID(), next); err != nil {
		s.logger.ErrorContext(ctx, "failed to schedule next transition",
			"order", transition.OrderID().String(), "target", next.String(), "error", err)
	}
}
