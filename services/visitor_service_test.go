package services

import (
	"context"
	"testing"

	"VisitorIntake/core"
	"VisitorIntake/metrics"
	"VisitorIntake/models"
	"VisitorIntake/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// recorderMock captures gateway calls made by the service.
type recorderMock struct{ mock.Mock }

func (r *recorderMock) Write(ctx context.Context, name, userAgent string) {
	r.Called(ctx, name, userAgent)
}

func TestVisitorService_Rejected_NoWrite(t *testing.T) {
	rec := new(recorderMock)
	svc := NewVisitorService(rec, nil, nil)

	v := svc.Submit(context.Background(), models.Submission{Name: "Bcdfg", UserAgent: "ua"})

	assert.Equal(t, core.ReasonNoVowel, v.Reason)
	rec.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisitorService_Accepted_WritesTrimmedName(t *testing.T) {
	rec := new(recorderMock)
	rec.On("Write", mock.Anything, "Anna O'Brien", "Mozilla/5.0").Return()
	svc := NewVisitorService(rec, nil, nil)

	v := svc.Submit(context.Background(), models.Submission{Name: "  Anna O'Brien ", UserAgent: "Mozilla/5.0"})

	assert.True(t, v.Accepted())
	assert.Equal(t, "Anna O'Brien", v.Name)
	rec.AssertExpectations(t)
}

func TestVisitorService_FailOpen_StoreAbsent(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := repositories.NewStoreHandle() // never connected
	m := metrics.New(reg, store.Connected)
	svc := NewVisitorService(NewPersistenceGateway(store, nil, m, GatewayOptions{}), nil, m)

	v := svc.Submit(context.Background(), models.Submission{Name: "Anna"})

	assert.True(t, v.Accepted())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Persisted.WithLabelValues(metrics.PersistSkipped)))
}
