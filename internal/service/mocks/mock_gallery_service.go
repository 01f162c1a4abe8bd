package mocks

import (
	"context"

	"salonweb/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context) []model.GalleryImage {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.GalleryImage)
}
