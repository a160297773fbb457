package calculation

// Logger receives the engine's trace of an assembly: the vital dates at Info,
// per-series row counts and totals at Debug, and inputs the engine tolerates but
// an analyst should review (an ignored pre-injury discount rate, residual earnings
// above the base) at Warn. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. CalculationEngine uses it when no Logger is set.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
