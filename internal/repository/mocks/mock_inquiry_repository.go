package mocks

import (
	"context"

	"salonweb/internal/model"
	"salonweb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	args := m.Called(ctx, inq)
	return args.Error(0)
}

func (m *MockInquiryRepository) UpdateStatus(ctx context.Context, id string, update repository.StatusUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
