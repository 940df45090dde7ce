package services // Use-case layer; orchestrates rules and side effects, not HTTP/DB details.

import (
	"context"

	"VisitorIntake/core"
	"VisitorIntake/metrics"
	"VisitorIntake/models"
	"VisitorIntake/utils/redislog"
)

// VisitorService lists the use-cases the handlers can call.
type VisitorService interface {
	// Submit validates a name and, when accepted, hands it to the gateway.
	// The verdict alone decides the response; persistence never does.
	Submit(ctx context.Context, sub models.Submission) core.Verdict
}

// Recorder is the write side the service needs; *PersistenceGateway implements it.
type Recorder interface {
	Write(ctx context.Context, name, userAgent string)
}

type visitorService struct {
	rec     Recorder
	log     *redislog.Logger // may be nil
	metrics *metrics.Metrics // may be nil
}

// NewVisitorService constructs a service with all dependencies injected.
func NewVisitorService(rec Recorder, rlog *redislog.Logger, m *metrics.Metrics) VisitorService {
	return &visitorService{rec: rec, log: rlog, metrics: m}
}

func (s *visitorService) Submit(ctx context.Context, sub models.Submission) core.Verdict {
	v := core.Validate(sub.Name)
	s.metrics.ObserveVerdict(v)

	if !v.Accepted() {
		s.log.Info("visitor rejected", map[string]string{"reason": string(v.Reason)})
		return v
	}

	s.rec.Write(ctx, v.Name, sub.UserAgent) // best-effort; outcome is only logged
	s.log.Info("visitor accepted", map[string]string{"name": v.Name})
	return v
}
