package mocks

import (
	"context"

	"VisitorIntake/core"
	"VisitorIntake/models"

	"github.com/stretchr/testify/mock"
)

// VisitorServiceMock is a testify/mock for services.VisitorService.
// We use this to test the HTTP handlers without real business logic.
type VisitorServiceMock struct{ mock.Mock }

func (m *VisitorServiceMock) Submit(ctx context.Context, sub models.Submission) core.Verdict {
	return m.Called(ctx, sub).Get(0).(core.Verdict)
}
