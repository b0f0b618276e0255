package mocks

import (
	"context"
	"dentflow-service/internal/app/contracts"

	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event *contracts.ActivityEvent) error {
	return m.Called(ctx, event).Error(0)
}
