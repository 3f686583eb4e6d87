package otellib

import (
	"context"
	"fmt"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InitOtel creates the tracer provider, spans are exported to jaeger only when enabled
func InitOtel(serviceName string, conf config.JaegerConfig) (trace.TracerProvider, func()) {
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("environment", conf.Environment),
	)

	if !conf.Enabled {
		provider := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
		return provider, func() {
			_ = provider.Shutdown(context.Background())
		}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.Endpoint)))
	if err != nil {
		panic(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return provider, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := provider.Shutdown(ctx)
		if err != nil {
			fmt.Println("Shutdown tracer provider error:", err)
		}
	}
}
