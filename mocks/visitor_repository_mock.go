package mocks

import (
	"context"

	"VisitorIntake/models"

	"github.com/stretchr/testify/mock"
)

// VisitorRepositoryMock is a testify/mock for repositories.VisitorRepository.
// We use this to unit-test the gateway without touching a DB.
type VisitorRepositoryMock struct{ mock.Mock }

func (m *VisitorRepositoryMock) Create(ctx context.Context, v *models.Visitor) error {
	return m.Called(ctx, v).Error(0)
}
