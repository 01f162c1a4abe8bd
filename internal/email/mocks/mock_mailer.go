package mocks

import (
	"context"

	"salonweb/internal/email"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) (email.SendResult, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.SendResult), args.Error(1)
}
