// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package telemetry provides utilities for setting up and configuring
// application observability. This file initializes the OpenTelemetry SDK:
// a tracer provider carrying the service identity, and standard context
// propagators so inbound trace headers are honored.
//
// No span exporter is registered. Spans exist for log correlation (see
// setup_logging.go) and for propagating trace context to outbound calls;
// wiring an exporter is a deployment concern, not an application one.
package telemetry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/govardhan-digital/content-search/internal/config"
	"go.opentelemetry.io/contrib/propagators/autoprop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// SetupTracing configures the OpenTelemetry SDK for the application and
// returns a shutdown function that must be called on exit so buffered
// telemetry state is flushed.
//
// Inputs:
//   - ctx: The parent context used during initialization.
//   - cfg: The application configuration, which supplies the service name.
//
// Returns:
//   - shutdown: A function to be deferred by the caller to tear down the
//     tracer provider.
//   - err: An error if resource construction fails.
func SetupTracing(ctx context.Context, cfg *config.Config) (shutdown func(context.Context) error, err error) {
	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.Application.Name),
		),
	)
	if errors.Is(err, resource.ErrPartialResource) || errors.Is(err, resource.ErrSchemaURLConflict) {
		slog.Warn("partial resource detection", "error", err)
	} else if err != nil {
		slog.Error("resource.New failed", "error", err)
		return nil, err
	}

	// autoprop configures the standard W3C Trace Context and B3
	// propagators so inbound trace headers are continued rather than
	// restarted.
	otel.SetTextMapPropagator(autoprop.NewTextMapPropagator())

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
