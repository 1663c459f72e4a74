package tracing

import (
	"io"
	"turnaround/common"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

// InitGlobalTracer builds a jaeger tracer from the JAEGER_* environment
// variables and installs it as the global tracer. The returned closer flushes
// pending spans.
func InitGlobalTracer() (io.Closer, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = common.GetServiceName()
	}

	tracer, closer, err := cfg.NewTracer(config.Logger(jaegerLogger{}))
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	common.Log.WithField("tracerService", cfg.ServiceName).Info("jaeger tracer initialized")
	return closer, nil
}

type jaegerLogger struct{}

var _ jaeger.Logger = jaegerLogger{}

func (jaegerLogger) Error(msg string) {
	common.Log.WithField("component", "jaeger").Error(msg)
}

func (jaegerLogger) Infof(msg string, args ...interface{}) {
	common.Log.WithField("component", "jaeger").Infof(msg, args...)
}
