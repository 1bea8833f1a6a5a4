package commands_test

import (
	"context"
	"time"

	"delify/internal/core/application/usecases/commands"
	"delify/internal/core/domain/model/account"
	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/domain/model/schedule"
	"delify/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*account.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByExternalUID(ctx context.Context, uid string) (*account.User, error) {
	args := m.Called(ctx, uid)
	if u := args.Get(0); u != nil {
		return u.(*account.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTransitionRepository struct{ mock.Mock }

func (m *MockTransitionRepository) Add(ctx context.Context, t *schedule.Transition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransitionRepository) Update(ctx context.Context, t *schedule.Transition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransitionRepository) ClaimFired(_ context.Context, _ kernel.UUID, _ time.Time) (bool, error) {
	return false, nil
}

func (m *MockTransitionRepository) GetDue(_ context.Context, _ time.Time) ([]*schedule.Transition, error) {
	return nil, nil
}

func (m *MockTransitionRepository) DeleteForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(_ context.Context, _ *catalog.Restaurant) error { return nil }
func (m *MockRestaurantRepository) AddMenuItem(_ context.Context, _ *catalog.MenuItem) error {
	return nil
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*catalog.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRestaurantRepository) GetAll(_ context.Context) ([]*catalog.Restaurant, error) {
	return nil, nil
}

func (m *MockRestaurantRepository) MenuItems(ctx context.Context, restaurantID kernel.UUID) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if items := args.Get(0); items != nil {
		return items.([]*catalog.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRemoveOrderUoW struct{ mock.Mock }

func (m *MockRemoveOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemoveOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemoveOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemoveOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRemoveOrderUoW) TransitionRepository() ports.TransitionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionRepository)
}

type MockRemoveOrderUoWFactory struct{ mock.Mock }

func (m *MockRemoveOrderUoWFactory) Create() commands.RemoveOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.RemoveOrderUoW)
}

// notifiedEvent records one fan-out delivery observed by MockNotifier.
type notifiedEvent struct {
	Kind    string // "broadcast", "user", or "restaurant"
	Key     string
	Event   string
	Payload any
}

// MockNotifier records fan-out deliveries for assertion. The real fan-out
// never returns errors, so a recording fake beats a testify mock here.
type MockNotifier struct {
	Events []notifiedEvent
}

func (m *MockNotifier) Broadcast(_ context.Context, event string, payload any) {
	m.Events = append(m.Events, notifiedEvent{Kind: "broadcast", Event: event, Payload: payload})
}

func (m *MockNotifier) NotifyUser(_ context.Context, uid string, event string, payload any) {
	m.Events = append(m.Events, notifiedEvent{Kind: "user", Key: uid, Event: event, Payload: payload})
}

func (m *MockNotifier) NotifyRestaurant(_ context.Context, id string, event string, payload any) {
	m.Events = append(m.Events, notifiedEvent{Kind: "restaurant", Key: id, Event: event, Payload: payload})
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, event string, payload any) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

type MockScheduler struct{ mock.Mock }

func (m *MockScheduler) ScheduleLifecycle(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockScheduler) CancelFor(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
