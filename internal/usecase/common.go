package usecase

import (
	"catering_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type noopMetrics struct{}

func (noopMetrics) Transition(string, string, bool) {}
func (noopMetrics) Regeneration(bool)               {}
func (noopMetrics) Payment(bool)                    {}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func orNoopMetrics(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
