package amqp_test

import (
	"context"
	"sync"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
)

type MockCompletePaymentHandler struct{ mock.Mock }

func (m *MockCompletePaymentHandler) Handle(ctx context.Context, cmd commands.CompletePaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCancelPaymentHandler struct{ mock.Mock }

func (m *MockCancelPaymentHandler) Handle(ctx context.Context, cmd commands.CancelPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockApproveOrderHandler struct{ mock.Mock }

func (m *MockApproveOrderHandler) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRejectOrderHandler struct{ mock.Mock }

func (m *MockRejectOrderHandler) Handle(ctx context.Context, cmd commands.RejectOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSaveRestaurantHandler struct{ mock.Mock }

func (m *MockSaveRestaurantHandler) Handle(ctx context.Context, cmd commands.SaveRestaurantCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

// fakeSource hands out a prepared delivery channel.
type fakeSource struct {
	deliveries chan amqp.Delivery
	err        error
	config     rabbitmq.ConsumeConfig
}

func newFakeSource() *fakeSource {
	return &fakeSource{deliveries: make(chan amqp.Delivery, 8)}
}

func (s *fakeSource) Consume(cfg rabbitmq.ConsumeConfig) (<-chan amqp.Delivery, error) {
	s.config = cfg
	if s.err != nil {
		return nil, s.err
	}
	return s.deliveries, nil
}

type settlement struct {
	tag     uint64
	ack     bool
	requeue bool
}

// recordingAcknowledger remembers how each delivery was settled.
type recordingAcknowledger struct {
	mu      sync.Mutex
	settled []settlement
}

func (a *recordingAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, ack: true})
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, requeue: requeue})
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *recordingAcknowledger) byTag() map[uint64]settlement {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make(map[uint64]settlement, len(a.settled))
	for _, s := range a.settled {
		result[s.tag] = s
	}
	return result
}
