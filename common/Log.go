package common

import (
	"context"
	"os"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
)

var Log *logrus.Logger

func init() {
	Log = NewLogger(os.Getenv("LOG_LEVEL"))
}

// NewLogger builds a JSON logger tagged with the service identity. An empty
// or unknown level keeps logrus' default.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout
	logger.Formatter = &logrus.JSONFormatter{}
	logger.AddHook(&DefaultFieldsHook{})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

// LogWithContext returns an entry carrying the trace and span ids of the span
// in ctx, when it comes from jaeger.
func LogWithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if ctx == nil {
		return entry
	}
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return entry
	}
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		entry = entry.WithFields(logrus.Fields{"traceId": sc.TraceID().String(), "spanId": sc.SpanID().String()})
	}
	return entry
}

type DefaultFieldsHook struct {
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["serviceName"] = GetServiceName()
	e.Data["serviceInstance"] = GetServiceInstance()
	return nil
}
